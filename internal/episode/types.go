package episode

import (
	"episode-srv/internal/model"
	"episode-srv/pkg/paginator"
)

// FilterLogic selects how multi-value association filters combine.
type FilterLogic string

const (
	// FilterLogicAnd requires every requested value to match (default).
	FilterLogicAnd FilterLogic = "AND"
	// FilterLogicOr requires at least one requested value to match.
	FilterLogicOr FilterLogic = "OR"
)

// ListEpisodesInput is the typed filter set for the listing operation.
// Absent filters are zero values; the query layer skips them.
type ListEpisodesInput struct {
	EpisodeIDs []int64
	Season     int64
	Title      string
	Months     []int64

	ColorIDs   []int64
	SubjectIDs []int64
	// Tool and technique ids are externally supplied strings, not numeric.
	ToolIDs      []string
	TechniqueIDs []string

	ColorNames     []string
	SubjectNames   []string
	ToolNames      []string
	TechniqueNames []string

	// Logic applies to all association filters at once; it is not
	// configurable per category.
	Logic FilterLogic

	Paginate paginator.PaginateQuery
}

// AppliedFilters echoes every resolved filter value back to the caller.
type AppliedFilters struct {
	EpisodeIDs     []int64
	Season         int64
	Months         []int64
	Title          string
	ColorIDs       []int64
	ColorNames     []string
	SubjectIDs     []int64
	SubjectNames   []string
	ToolIDs        []string
	ToolNames      []string
	TechniqueIDs   []string
	TechniqueNames []string
	FilterLogic    FilterLogic
}

// ListEpisodesOutput is the listing result with pagination metadata and the
// filter echo.
type ListEpisodesOutput struct {
	Episodes  []model.Episode
	Paginator paginator.Paginator
	Filters   AppliedFilters
}
