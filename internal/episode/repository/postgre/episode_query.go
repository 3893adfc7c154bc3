package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"episode-srv/internal/episode/repository"
)

// binder allocates positional placeholders and collects bound values.
// Caller-supplied values only ever travel through the args slice; the SQL
// text itself is assembled from fixed internal identifiers. List values bind
// as a single Postgres array parameter, so a filter with N values still
// consumes one placeholder and zero-length lists never reach the driver.
type binder struct {
	args []any
}

func (b *binder) bind(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *binder) bindInt64s(vals []int64) string {
	return b.bind(pq.Array(vals))
}

func (b *binder) bindStrings(vals []string) string {
	return b.bind(pq.Array(vals))
}

// assocPredicate describes one association filter before compilation: the
// join to walk, the column to compare, and how to compare it. The four
// relations and their aliases form a fixed internal set.
type assocPredicate struct {
	from    string // association table, optionally joined to its reference table
	joinCol string // association column matched against e.id
	col     string // compared column
	cast    string // optional type cast for string-id columns, e.g. "varchar"
	match   string // the bound comparison, e.g. "ILIKE ANY($3)"
	n       int    // number of requested values, used by conjunctive count
}

// compile renders the predicate as a correlated subquery against e.
//
// MatchAll uses the conjunctive-count shape: the count of distinct matching
// rows for the episode must equal the number of requested values. For
// substring name matches this is a documented approximation (one requested
// value can match several stored names); id filters compare exactly.
// Otherwise the existential shape asserts at least one row matches.
func (p assocPredicate) compile(matchAll bool) string {
	col := p.col
	if p.cast != "" {
		col = fmt.Sprintf("%s::%s", col, p.cast)
	}

	if matchAll {
		return fmt.Sprintf(
			"(SELECT COUNT(DISTINCT %s) FROM %s WHERE %s = e.id AND %s %s) = %d",
			col, p.from, p.joinCol, col, p.match, p.n,
		)
	}
	return fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s WHERE %s = e.id AND %s %s)",
		p.from, p.joinCol, col, p.match,
	)
}

// namePredicate builds a case-insensitive substring predicate over a
// reference entity's name column.
func namePredicate(b *binder, from, joinCol, col string, names []string) *assocPredicate {
	if len(names) == 0 {
		return nil
	}
	patterns := make([]string, len(names))
	for i, name := range names {
		patterns[i] = "%" + name + "%"
	}
	return &assocPredicate{
		from:    from,
		joinCol: joinCol,
		col:     col,
		match:   fmt.Sprintf("ILIKE ANY(%s)", b.bindStrings(patterns)),
		n:       len(names),
	}
}

// intIDPredicate builds an exact-equality predicate over a numeric
// association id column.
func intIDPredicate(b *binder, from, joinCol, col string, ids []int64) *assocPredicate {
	if len(ids) == 0 {
		return nil
	}
	return &assocPredicate{
		from:    from,
		joinCol: joinCol,
		col:     col,
		match:   fmt.Sprintf("= ANY(%s)", b.bindInt64s(ids)),
		n:       len(ids),
	}
}

// stringIDPredicate builds an exact-equality predicate over a string
// association id column, with an optional cast guarding against column-type
// mismatches.
func stringIDPredicate(b *binder, from, joinCol, col, cast string, ids []string) *assocPredicate {
	if len(ids) == 0 {
		return nil
	}
	return &assocPredicate{
		from:    from,
		joinCol: joinCol,
		col:     col,
		cast:    cast,
		match:   fmt.Sprintf("= ANY(%s)", b.bindStrings(ids)),
		n:       len(ids),
	}
}

// buildEpisodeWhere compiles the active filters into a WHERE clause and its
// bound arguments. The same clause and args feed both the listing and the
// count statement, which keeps the page and the total consistent. An empty
// filter set yields an empty clause.
func buildEpisodeWhere(opt repository.ListEpisodesOptions) (string, []any) {
	b := &binder{}
	var clauses []string

	// Episode-level predicates
	if len(opt.EpisodeIDs) > 0 {
		clauses = append(clauses, fmt.Sprintf("e.id = ANY(%s)", b.bindInt64s(opt.EpisodeIDs)))
	}
	if opt.Season != 0 {
		clauses = append(clauses, fmt.Sprintf("e.season_number = %s", b.bind(opt.Season)))
	}
	if opt.Title != "" {
		clauses = append(clauses, fmt.Sprintf("e.title ILIKE %s", b.bind("%"+opt.Title+"%")))
	}
	if len(opt.Months) > 0 {
		clauses = append(clauses, fmt.Sprintf("EXTRACT(MONTH FROM e.air_date) = ANY(%s)", b.bindInt64s(opt.Months)))
	}

	// Association predicates, name-based then id-based
	predicates := []*assocPredicate{
		namePredicate(b, "episode_color ec JOIN color c ON ec.color_id = c.id",
			"ec.episode_id", "c.name", opt.ColorNames),
		namePredicate(b, "episode_subject es JOIN subject_matter s ON es.subject_id = s.id",
			"es.episode_id", "s.name", opt.SubjectNames),
		namePredicate(b, "episode_tool et JOIN tool t ON et.tool_id = t.id",
			"et.episode_id", "t.name", opt.ToolNames),
		namePredicate(b, "episode_technique ete JOIN technique tc ON ete.technique_id = tc.id",
			"ete.episode_id", "tc.name", opt.TechniqueNames),

		intIDPredicate(b, "episode_color", "episode_id", "color_id", opt.ColorIDs),
		intIDPredicate(b, "episode_subject", "episode_id", "subject_id", opt.SubjectIDs),
		stringIDPredicate(b, "episode_tool", "episode_id", "tool_id", "", opt.ToolIDs),
		stringIDPredicate(b, "episode_technique", "episode_id", "technique_id", "", opt.TechniqueIDs),
	}
	for _, p := range predicates {
		if p != nil {
			clauses = append(clauses, p.compile(opt.MatchAll))
		}
	}

	if len(clauses) == 0 {
		return "", b.args
	}
	return "WHERE " + strings.Join(clauses, " AND "), b.args
}

// episodeBaseJoins is the shared FROM/JOIN block: episode left-joined to all
// four association/reference pairs so missing associations still yield rows.
const episodeBaseJoins = `
FROM episode e
LEFT JOIN episode_color ec ON e.id = ec.episode_id
LEFT JOIN color c ON ec.color_id = c.id
LEFT JOIN episode_subject es ON e.id = es.episode_id
LEFT JOIN subject_matter s ON es.subject_id = s.id
LEFT JOIN episode_tool et ON e.id = et.episode_id
LEFT JOIN tool t ON et.tool_id = t.id
LEFT JOIN episode_technique ete ON e.id = ete.episode_id
LEFT JOIN technique tc ON ete.technique_id = tc.id`

// buildListEpisodesQuery assembles the paginated listing statement. Related
// names are aggregated per episode in the same statement, so one page costs
// one query regardless of how many associations each episode has.
func buildListEpisodesQuery(opt repository.ListEpisodesOptions) (string, []any) {
	whereSQL, args := buildEpisodeWhere(opt)
	b := &binder{args: args}

	query := `
SELECT
	e.id,
	e.title,
	e.season_number,
	e.episode_number,
	e.air_date,
	e.youtube_url,
	e.image_url,
	ARRAY_AGG(DISTINCT c.name) FILTER (WHERE c.name IS NOT NULL) AS colors,
	ARRAY_AGG(DISTINCT s.name) FILTER (WHERE s.name IS NOT NULL) AS subjects,
	ARRAY_AGG(DISTINCT t.name) FILTER (WHERE t.name IS NOT NULL) AS tools,
	ARRAY_AGG(DISTINCT tc.name) FILTER (WHERE tc.name IS NOT NULL) AS techniques` +
		episodeBaseJoins + "\n" + whereSQL + `
GROUP BY e.id
ORDER BY e.season_number, e.episode_number
LIMIT ` + b.bind(opt.Limit) + " OFFSET " + b.bind(opt.Offset)

	return query, b.args
}

// buildCountEpisodesQuery assembles the count statement from the exact same
// WHERE clause and argument list as the listing. With no filters active it
// short-circuits to a plain table count, which is equivalent and cheaper.
func buildCountEpisodesQuery(opt repository.ListEpisodesOptions) (string, []any) {
	if !opt.HasFilters() {
		return "SELECT COUNT(*) FROM episode", nil
	}

	whereSQL, args := buildEpisodeWhere(opt)
	query := "SELECT COUNT(DISTINCT e.id)" + episodeBaseJoins + "\n" + whereSQL

	return query, args
}
