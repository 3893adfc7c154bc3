package repository

// ListEpisodesOptions is the typed filter set handed to the query compiler.
// Empty slices and zero scalars mean the filter is absent.
type ListEpisodesOptions struct {
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

	// MatchAll selects conjunctive-count semantics for the association
	// filters; false means existential (at least one value matches).
	MatchAll bool

	Limit  int64
	Offset int64
}

// HasFilters reports whether any predicate would be emitted for these
// options. Used for the unfiltered count fast path.
func (o ListEpisodesOptions) HasFilters() bool {
	return len(o.EpisodeIDs) > 0 ||
		o.Season != 0 ||
		o.Title != "" ||
		len(o.Months) > 0 ||
		len(o.ColorIDs) > 0 ||
		len(o.SubjectIDs) > 0 ||
		len(o.ToolIDs) > 0 ||
		len(o.TechniqueIDs) > 0 ||
		len(o.ColorNames) > 0 ||
		len(o.SubjectNames) > 0 ||
		len(o.ToolNames) > 0 ||
		len(o.TechniqueNames) > 0
}
