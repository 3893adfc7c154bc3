package etl

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	// airDateLayout matches the long-form dates in the air-date file,
	// e.g. "January 11, 1983".
	airDateLayout = "January 2, 2006"

	// episodesPerSeason is fixed for the whole broadcast run. Both the
	// air-date file (line position) and the E### codes in the tool and
	// technique files rely on it.
	episodesPerSeason = 13
)

var (
	episodeDateLine = regexp.MustCompile(`^"([^"]+)"\s+\(([^)]+)\)`)
	guestNote       = regexp.MustCompile(`\s*(Guest Artist|Special guest|featuring|Footage with).*`)
	episodeCode     = regexp.MustCompile(`^S(\d+)E(\d+)`)
)

// ParseEpisodeDates reads the air-date file. Each line is
// `"Title" (Month D, YYYY)` with optional guest notes inside the parentheses.
// Season and episode come from the 0-based line position. Unparseable lines
// are skipped but still advance the position; unparseable dates yield a nil
// AirDate.
func ParseEpisodeDates(r io.Reader) ([]EpisodeDate, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read air dates: %w", err)
	}

	var episodes []EpisodeDate
	for idx, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := episodeDateLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		ep := EpisodeDate{
			Title:         strings.TrimSpace(m[1]),
			SeasonNumber:  (idx / episodesPerSeason) + 1,
			EpisodeNumber: (idx % episodesPerSeason) + 1,
		}

		dateStr := strings.TrimSpace(guestNote.ReplaceAllString(m[2], ""))
		if t, err := time.Parse(airDateLayout, dateStr); err == nil {
			ep.AirDate = &t
		}

		episodes = append(episodes, ep)
	}

	return episodes, nil
}

// ParseListLiteral parses the python-style list literals the colors file
// carries, e.g. `['Alizarin Crimson', "Prussian Blue"]`. Returns nil for
// empty or non-list input.
func ParseListLiteral(s string) []string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil
	}
	s = s[1 : len(s)-1]

	var (
		items   []string
		current strings.Builder
		quote   rune
	)
	flush := func() {
		item := strings.Trim(current.String(), "[]'\" \r\n\t")
		item = strings.TrimFunc(item, unicode.IsSpace)
		if item != "" && item != "nan" {
			items = append(items, item)
		}
		current.Reset()
	}

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ',':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return items
}

// csvHeader maps cleaned column names to their index. The source files carry
// stray \r and padding in header cells.
func csvHeader(record []string) map[string]int {
	header := make(map[string]int, len(record))
	for i, col := range record {
		col = strings.NewReplacer("\r", "", "\n", "").Replace(col)
		header[strings.TrimSpace(col)] = i
	}
	return header
}

func field(record []string, header map[string]int, name string) string {
	i, ok := header[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// newCSVReader returns a reader tolerant of the source files' quirks: ragged
// rows are surfaced per-record so callers can skip them.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// ParseColorsCSV reads the colors file: episode identity, media URLs and the
// palette list literals. Rows with a malformed season or episode are skipped.
func ParseColorsCSV(r io.Reader) ([]ColorRow, error) {
	cr := newCSVReader(r)

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read colors header: %w", err)
	}
	header := csvHeader(head)

	var rows []ColorRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		season, serr := strconv.Atoi(field(record, header, "season"))
		episode, eerr := strconv.Atoi(field(record, header, "episode"))
		if serr != nil || eerr != nil {
			continue
		}

		youtube := field(record, header, "youtube_src")
		if youtube == "" {
			youtube = field(record, header, "youtube_url")
		}
		image := field(record, header, "img_src")
		if image == "" {
			image = field(record, header, "image_url")
		}

		rows = append(rows, ColorRow{
			Season:     season,
			Episode:    episode,
			Title:      field(record, header, "painting_title"),
			YoutubeURL: youtube,
			ImageURL:   image,
			Colors:     ParseListLiteral(field(record, header, "colors")),
			Hexes:      ParseListLiteral(field(record, header, "color_hex")),
		})
	}

	return rows, nil
}

// SubjectName turns an UNDERSCORE_COLUMN header into its display name,
// e.g. "SNOWY_MOUNTAIN" -> "Snowy Mountain".
func SubjectName(column string) string {
	words := strings.Fields(strings.ReplaceAll(column, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// ParseEpisodeCode parses an S##E## code into its key.
func ParseEpisodeCode(code string) (EpisodeKey, bool) {
	m := episodeCode.FindStringSubmatch(strings.TrimSpace(code))
	if m == nil {
		return EpisodeKey{}, false
	}
	season, _ := strconv.Atoi(m[1])
	episode, _ := strconv.Atoi(m[2])
	return EpisodeKey{Season: season, Episode: episode}, true
}

// ParseSubjectsCSV reads the wide 0/1 subject matrix. The EPISODE column
// carries S##E## codes; every other column except TITLE is a subject flag.
func ParseSubjectsCSV(r io.Reader) (SubjectMatrix, error) {
	cr := newCSVReader(r)

	head, err := cr.Read()
	if err != nil {
		return SubjectMatrix{}, fmt.Errorf("read subjects header: %w", err)
	}
	header := csvHeader(head)

	var subjectCols []string
	var subjectIdx []int
	for i, col := range head {
		col = strings.TrimSpace(strings.NewReplacer("\r", "", "\n", "").Replace(col))
		if col == "EPISODE" || col == "TITLE" {
			continue
		}
		subjectCols = append(subjectCols, SubjectName(col))
		subjectIdx = append(subjectIdx, i)
	}

	matrix := SubjectMatrix{Subjects: subjectCols}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		key, ok := ParseEpisodeCode(field(record, header, "EPISODE"))
		if !ok {
			continue
		}

		row := SubjectRow{
			Season:  key.Season,
			Episode: key.Episode,
			Title:   strings.Trim(field(record, header, "TITLE"), `"`),
			Flags:   make([]bool, len(subjectIdx)),
		}
		for j, i := range subjectIdx {
			row.Flags[j] = i < len(record) && strings.TrimSpace(record[i]) == "1"
		}
		matrix.Rows = append(matrix.Rows, row)
	}

	return matrix, nil
}

// ParseEpisodeRefs parses an "E001, E014" style list into episode keys.
// E### codes count from the start of the run, 13 episodes per season:
// E001 -> S1E1, E014 -> S2E1. Non-numeric entries are dropped.
func ParseEpisodeRefs(s string) []EpisodeKey {
	var keys []EpisodeKey
	for _, part := range strings.Split(strings.ReplaceAll(s, "E", ""), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			continue
		}
		keys = append(keys, EpisodeKey{
			Season:  ((n - 1) / episodesPerSeason) + 1,
			Episode: ((n - 1) % episodesPerSeason) + 1,
		})
	}
	return keys
}

// ParseToolsCSV reads the tools file with its episode and technique
// cross-references.
func ParseToolsCSV(r io.Reader) ([]ToolRow, error) {
	cr := newCSVReader(r)

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read tools header: %w", err)
	}
	header := csvHeader(head)

	var rows []ToolRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		id := field(record, header, "Tool_ID")
		if id == "" {
			continue
		}

		var refs []string
		for _, ref := range strings.Split(field(record, header, "Technique_References"), ",") {
			if ref = strings.TrimSpace(ref); ref != "" {
				refs = append(refs, ref)
			}
		}

		rows = append(rows, ToolRow{
			ID:               id,
			Name:             field(record, header, "Tool_Name"),
			Category:         field(record, header, "Category"),
			PrimaryUses:      field(record, header, "Primary_Uses"),
			CompatibleColors: field(record, header, "Compatible_Colors"),
			Episodes:         ParseEpisodeRefs(field(record, header, "Episodes_Used")),
			TechniqueRefs:    refs,
		})
	}

	return rows, nil
}

// ParseTechniquesCSV reads the techniques file.
func ParseTechniquesCSV(r io.Reader) ([]TechniqueRow, error) {
	cr := newCSVReader(r)

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read techniques header: %w", err)
	}
	header := csvHeader(head)

	var rows []TechniqueRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		id := field(record, header, "Technique_ID")
		if id == "" {
			continue
		}

		rows = append(rows, TechniqueRow{
			ID:                id,
			Name:              field(record, header, "Technique_Name"),
			Description:       field(record, header, "Description"),
			PrimaryColorsUsed: field(record, header, "Primary_Colors_Used"),
			CommonSubjects:    field(record, header, "Common_Subjects"),
			DifficultyLevel:   field(record, header, "Difficulty_Level"),
			Episodes:          ParseEpisodeRefs(field(record, header, "Episodes_Featured")),
		})
	}

	return rows, nil
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// NormalizeTitle reduces a painting title to a matching key: alphanumerics
// and spaces only, lowered. The air-date file and the colors file quote and
// punctuate titles differently.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(nonAlnum.ReplaceAllString(title, "")))
}
