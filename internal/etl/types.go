package etl

import "time"

// EpisodeKey identifies an episode by its broadcast position.
type EpisodeKey struct {
	Season  int
	Episode int
}

// EpisodeDate is one parsed line of the air-date file. AirDate is nil when
// the date portion could not be parsed.
type EpisodeDate struct {
	Title         string
	SeasonNumber  int
	EpisodeNumber int
	AirDate       *time.Time
}

// ColorRow is one row of the colors file: the episode identity plus the
// palette used in that painting. Colors and Hexes are parallel; Hexes may be
// shorter when the source column was empty.
type ColorRow struct {
	Season     int
	Episode    int
	Title      string
	YoutubeURL string
	ImageURL   string
	Colors     []string
	Hexes      []string
}

// SubjectRow is one row of the wide 0/1 subject matrix. Flags is parallel to
// SubjectMatrix.Subjects.
type SubjectRow struct {
	Season  int
	Episode int
	Title   string
	Flags   []bool
}

// SubjectMatrix is the parsed subject file: the cleaned subject names plus
// one flag row per episode.
type SubjectMatrix struct {
	Subjects []string
	Rows     []SubjectRow
}

// ToolRow is one row of the tools file. Episodes holds the episodes the tool
// appears in; TechniqueRefs holds technique ids the tool serves.
type ToolRow struct {
	ID               string
	Name             string
	Category         string
	PrimaryUses      string
	CompatibleColors string
	Episodes         []EpisodeKey
	TechniqueRefs    []string
}

// TechniqueRow is one row of the techniques file.
type TechniqueRow struct {
	ID                string
	Name              string
	Description       string
	PrimaryColorsUsed string
	CommonSubjects    string
	DifficultyLevel   string
	Episodes          []EpisodeKey
}
