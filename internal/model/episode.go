package model

import "time"

// Episode is one produced unit of content. (season_number, episode_number)
// is unique; air date and media URLs may be missing in the source data.
type Episode struct {
	ID            int64
	Title         string
	SeasonNumber  int
	EpisodeNumber int
	AirDate       *time.Time
	YoutubeURL    *string
	ImageURL      *string

	// Aggregated reference names from the association relations, distinct
	// and with left-join NULLs already filtered out.
	Colors     []string
	Subjects   []string
	Tools      []string
	Techniques []string
}
