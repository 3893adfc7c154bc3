package http

import (
	"episode-srv/internal/episode"
	"episode-srv/internal/model"
	"episode-srv/pkg/paginator"
	"episode-srv/pkg/response"
)

type listEpisodesReq struct {
	EpisodeIDs []int64
	Season     int64
	Title      string
	Months     []int64

	ColorIDs     []int64
	SubjectIDs   []int64
	ToolIDs      []string
	TechniqueIDs []string

	ColorNames     []string
	SubjectNames   []string
	ToolNames      []string
	TechniqueNames []string

	FilterType string

	Page    int64
	PerPage int64
}

func (r listEpisodesReq) toInput() episode.ListEpisodesInput {
	logic := episode.FilterLogicAnd
	if r.FilterType == string(episode.FilterLogicOr) {
		logic = episode.FilterLogicOr
	}

	return episode.ListEpisodesInput{
		EpisodeIDs:     r.EpisodeIDs,
		Season:         r.Season,
		Title:          r.Title,
		Months:         r.Months,
		ColorIDs:       r.ColorIDs,
		SubjectIDs:     r.SubjectIDs,
		ToolIDs:        r.ToolIDs,
		TechniqueIDs:   r.TechniqueIDs,
		ColorNames:     r.ColorNames,
		SubjectNames:   r.SubjectNames,
		ToolNames:      r.ToolNames,
		TechniqueNames: r.TechniqueNames,
		Logic:          logic,
		Paginate: paginator.PaginateQuery{
			Page:  int(r.Page),
			Limit: r.PerPage,
		},
	}
}

type episodeResp struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Season     int      `json:"season"`
	Episode    int      `json:"episode"`
	AirDate    *string  `json:"air_date"`
	YoutubeURL *string  `json:"youtube_url"`
	ImageURL   *string  `json:"image_url"`
	Colors     []string `json:"colors"`
	Subjects   []string `json:"subjects"`
	Tools      []string `json:"tools"`
	Techniques []string `json:"techniques"`
}

type filtersAppliedResp struct {
	EpisodeIDs     []int64  `json:"episode_ids"`
	Season         *int64   `json:"season"`
	Months         []int64  `json:"months"`
	Title          *string  `json:"title"`
	ColorIDs       []int64  `json:"color_ids"`
	ColorNames     []string `json:"color_names"`
	SubjectIDs     []int64  `json:"subject_ids"`
	SubjectNames   []string `json:"subject_names"`
	ToolIDs        []string `json:"tool_ids"`
	ToolNames      []string `json:"tool_names"`
	TechniqueIDs   []string `json:"technique_ids"`
	TechniqueNames []string `json:"technique_names"`
	FilterLogic    string   `json:"filter_logic"`
}

type listEpisodesResp struct {
	Episodes       []episodeResp               `json:"episodes"`
	Pagination     paginator.PaginatorResponse `json:"pagination"`
	FiltersApplied filtersAppliedResp          `json:"filters_applied"`
}

func (h *handler) newListEpisodesResp(o episode.ListEpisodesOutput) listEpisodesResp {
	episodes := make([]episodeResp, len(o.Episodes))
	for i, ep := range o.Episodes {
		episodes[i] = newEpisodeResp(ep)
	}

	return listEpisodesResp{
		Episodes:       episodes,
		Pagination:     o.Paginator.ToResponse(),
		FiltersApplied: newFiltersAppliedResp(o.Filters),
	}
}

func newEpisodeResp(ep model.Episode) episodeResp {
	resp := episodeResp{
		ID:         ep.ID,
		Title:      ep.Title,
		Season:     ep.SeasonNumber,
		Episode:    ep.EpisodeNumber,
		YoutubeURL: ep.YoutubeURL,
		ImageURL:   ep.ImageURL,
		Colors:     emptyIfNil(ep.Colors),
		Subjects:   emptyIfNil(ep.Subjects),
		Tools:      emptyIfNil(ep.Tools),
		Techniques: emptyIfNil(ep.Techniques),
	}
	if ep.AirDate != nil {
		formatted := ep.AirDate.Format(response.DateFormat)
		resp.AirDate = &formatted
	}
	return resp
}

func newFiltersAppliedResp(f episode.AppliedFilters) filtersAppliedResp {
	resp := filtersAppliedResp{
		EpisodeIDs:     emptyIfNil(f.EpisodeIDs),
		Months:         emptyIfNil(f.Months),
		ColorIDs:       emptyIfNil(f.ColorIDs),
		ColorNames:     emptyIfNil(f.ColorNames),
		SubjectIDs:     emptyIfNil(f.SubjectIDs),
		SubjectNames:   emptyIfNil(f.SubjectNames),
		ToolIDs:        emptyIfNil(f.ToolIDs),
		ToolNames:      emptyIfNil(f.ToolNames),
		TechniqueIDs:   emptyIfNil(f.TechniqueIDs),
		TechniqueNames: emptyIfNil(f.TechniqueNames),
		FilterLogic:    string(f.FilterLogic),
	}
	if f.Season != 0 {
		season := f.Season
		resp.Season = &season
	}
	if f.Title != "" {
		title := f.Title
		resp.Title = &title
	}
	return resp
}

// emptyIfNil keeps absent lists rendering as [] instead of null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
