package usecase

import (
	"context"
	"fmt"

	"episode-srv/internal/episode"
	"episode-srv/internal/episode/repository"
	"episode-srv/internal/model"
	"episode-srv/pkg/paginator"
)

// ListEpisodes runs the filterable listing: normalize pagination, execute the
// data page and the matching count, and assemble the envelope with the filter
// echo. Two read-only statements per call, nothing retried.
func (uc *implUseCase) ListEpisodes(ctx context.Context, _ model.Scope, input episode.ListEpisodesInput) (episode.ListEpisodesOutput, error) {
	pq := input.Paginate
	pq.Adjust()

	opt := buildListOptions(input, pq)

	episodes, err := uc.repo.ListEpisodes(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "episode.usecase.ListEpisodes: list query failed: %v", err)
		return episode.ListEpisodesOutput{}, fmt.Errorf("%w: %v", episode.ErrQueryFailed, err)
	}

	total, err := uc.repo.CountEpisodes(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "episode.usecase.ListEpisodes: count query failed: %v", err)
		return episode.ListEpisodesOutput{}, fmt.Errorf("%w: %v", episode.ErrQueryFailed, err)
	}

	return episode.ListEpisodesOutput{
		Episodes: episodes,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(episodes)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
		Filters: buildAppliedFilters(input),
	}, nil
}

func buildListOptions(input episode.ListEpisodesInput, pq paginator.PaginateQuery) repository.ListEpisodesOptions {
	return repository.ListEpisodesOptions{
		EpisodeIDs:     input.EpisodeIDs,
		Season:         input.Season,
		Title:          input.Title,
		Months:         input.Months,
		ColorIDs:       input.ColorIDs,
		SubjectIDs:     input.SubjectIDs,
		ToolIDs:        input.ToolIDs,
		TechniqueIDs:   input.TechniqueIDs,
		ColorNames:     input.ColorNames,
		SubjectNames:   input.SubjectNames,
		ToolNames:      input.ToolNames,
		TechniqueNames: input.TechniqueNames,
		MatchAll:       input.Logic != episode.FilterLogicOr,
		Limit:          pq.Limit,
		Offset:         pq.Offset(),
	}
}

func buildAppliedFilters(input episode.ListEpisodesInput) episode.AppliedFilters {
	logic := input.Logic
	if logic != episode.FilterLogicOr {
		logic = episode.FilterLogicAnd
	}

	return episode.AppliedFilters{
		EpisodeIDs:     input.EpisodeIDs,
		Season:         input.Season,
		Months:         input.Months,
		Title:          input.Title,
		ColorIDs:       input.ColorIDs,
		ColorNames:     input.ColorNames,
		SubjectIDs:     input.SubjectIDs,
		SubjectNames:   input.SubjectNames,
		ToolIDs:        input.ToolIDs,
		ToolNames:      input.ToolNames,
		TechniqueIDs:   input.TechniqueIDs,
		TechniqueNames: input.TechniqueNames,
		FilterLogic:    logic,
	}
}
