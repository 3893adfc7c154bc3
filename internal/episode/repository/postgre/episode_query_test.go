package postgre

import (
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"episode-srv/internal/episode/repository"
)

func TestBuildEpisodeWhereEmpty(t *testing.T) {
	whereSQL, args := buildEpisodeWhere(repository.ListEpisodesOptions{})

	assert.Empty(t, whereSQL)
	assert.Empty(t, args)
}

func TestBuildEpisodeWhereScalarFilters(t *testing.T) {
	opt := repository.ListEpisodesOptions{
		EpisodeIDs: []int64{1, 2, 3},
		Season:     5,
		Title:      "mountain",
		Months:     []int64{1, 12},
	}

	whereSQL, args := buildEpisodeWhere(opt)

	assert.Contains(t, whereSQL, "e.id = ANY($1)")
	assert.Contains(t, whereSQL, "e.season_number = $2")
	assert.Contains(t, whereSQL, "e.title ILIKE $3")
	assert.Contains(t, whereSQL, "EXTRACT(MONTH FROM e.air_date) = ANY($4)")
	require.Len(t, args, 4)

	// Caller values only appear in the args, never in the SQL text.
	assert.NotContains(t, whereSQL, "mountain")
	assert.Equal(t, int64(5), args[1])
	assert.Equal(t, "%mountain%", args[2])
}

func TestBuildEpisodeWhereNameFilterConjunctive(t *testing.T) {
	opt := repository.ListEpisodesOptions{
		TechniqueNames: []string{"Wet-on-Wet", "Dry Brush"},
		MatchAll:       true,
	}

	whereSQL, args := buildEpisodeWhere(opt)

	// Conjunctive count: distinct matching rows must equal the number of
	// requested values.
	assert.Contains(t, whereSQL, "SELECT COUNT(DISTINCT tc.name)")
	assert.Contains(t, whereSQL, "episode_technique ete JOIN technique tc ON ete.technique_id = tc.id")
	assert.Contains(t, whereSQL, "ete.episode_id = e.id")
	assert.Contains(t, whereSQL, "tc.name ILIKE ANY($1)")
	assert.Contains(t, whereSQL, ") = 2")

	// Each requested value is wrapped for substring matching and the whole
	// list binds as one array parameter.
	require.Len(t, args, 1)
	arr, ok := args[0].(*pq.StringArray)
	require.True(t, ok)
	assert.Equal(t, pq.StringArray{"%Wet-on-Wet%", "%Dry Brush%"}, *arr)
}

func TestBuildEpisodeWhereNameFilterExistential(t *testing.T) {
	opt := repository.ListEpisodesOptions{
		ColorNames: []string{"Prussian Blue", "Titanium White"},
		MatchAll:   false,
	}

	whereSQL, _ := buildEpisodeWhere(opt)

	assert.Contains(t, whereSQL, "EXISTS (SELECT 1 FROM episode_color ec JOIN color c ON ec.color_id = c.id")
	assert.Contains(t, whereSQL, "c.name ILIKE ANY($1)")
	assert.NotContains(t, whereSQL, "COUNT(DISTINCT")
}

func TestBuildEpisodeWhereIDFilters(t *testing.T) {
	t.Run("numeric ids use exact equality", func(t *testing.T) {
		opt := repository.ListEpisodesOptions{
			ColorIDs: []int64{7, 9},
			MatchAll: true,
		}
		whereSQL, args := buildEpisodeWhere(opt)

		assert.Contains(t, whereSQL, "SELECT COUNT(DISTINCT color_id) FROM episode_color")
		assert.Contains(t, whereSQL, "color_id = ANY($1)")
		assert.Contains(t, whereSQL, ") = 2")
		assert.NotContains(t, whereSQL, "ILIKE")
		assert.Len(t, args, 1)
	})

	t.Run("string ids exact match existential", func(t *testing.T) {
		opt := repository.ListEpisodesOptions{
			ToolIDs:      []string{"TL001", "TL004"},
			TechniqueIDs: []string{"T002"},
		}
		whereSQL, args := buildEpisodeWhere(opt)

		assert.Contains(t, whereSQL, "EXISTS (SELECT 1 FROM episode_tool WHERE episode_id = e.id AND tool_id = ANY($1))")
		assert.Contains(t, whereSQL, "EXISTS (SELECT 1 FROM episode_technique WHERE episode_id = e.id AND technique_id = ANY($2))")
		assert.Len(t, args, 2)
	})
}

func TestStringIDPredicateCast(t *testing.T) {
	b := &binder{}
	p := stringIDPredicate(b, "episode_tool", "episode_id", "tool_id", "varchar", []string{"TL001"})
	require.NotNil(t, p)

	sql := p.compile(true)
	assert.Contains(t, sql, "COUNT(DISTINCT tool_id::varchar)")
	assert.Contains(t, sql, "tool_id::varchar = ANY($1)")
}

func TestBuildEpisodeWhereMultipleCategories(t *testing.T) {
	opt := repository.ListEpisodesOptions{
		Season:     3,
		ColorNames: []string{"Phthalo Green"},
		SubjectIDs: []int64{4},
		MatchAll:   true,
	}

	whereSQL, args := buildEpisodeWhere(opt)

	// Categories always combine with AND; the logic toggle only shapes the
	// subqueries within each category.
	assert.Equal(t, 2, strings.Count(whereSQL, " AND (SELECT COUNT(DISTINCT"))
	assert.True(t, strings.HasPrefix(whereSQL, "WHERE e.season_number = $1"))
	assert.Len(t, args, 3)
}

func TestBuildListEpisodesQuery(t *testing.T) {
	opt := repository.ListEpisodesOptions{
		Season: 2,
		Limit:  10,
		Offset: 10,
	}

	query, args := buildListEpisodesQuery(opt)

	assert.Contains(t, query, "ARRAY_AGG(DISTINCT c.name) FILTER (WHERE c.name IS NOT NULL) AS colors")
	assert.Contains(t, query, "ARRAY_AGG(DISTINCT tc.name) FILTER (WHERE tc.name IS NOT NULL) AS techniques")
	assert.Contains(t, query, "LEFT JOIN episode_subject es ON e.id = es.episode_id")
	assert.Contains(t, query, "WHERE e.season_number = $1")
	assert.Contains(t, query, "GROUP BY e.id")
	assert.Contains(t, query, "ORDER BY e.season_number, e.episode_number")
	assert.Contains(t, query, "LIMIT $2 OFFSET $3")

	require.Len(t, args, 3)
	assert.Equal(t, int64(2), args[0])
	assert.Equal(t, int64(10), args[1])
	assert.Equal(t, int64(10), args[2])
}

func TestBuildCountEpisodesQuery(t *testing.T) {
	t.Run("unfiltered uses plain table count", func(t *testing.T) {
		query, args := buildCountEpisodesQuery(repository.ListEpisodesOptions{Limit: 20})

		assert.Equal(t, "SELECT COUNT(*) FROM episode", query)
		assert.Empty(t, args)
	})

	t.Run("filtered count shares predicates with listing", func(t *testing.T) {
		opt := repository.ListEpisodesOptions{
			Title:      "ocean",
			ColorNames: []string{"Prussian Blue"},
			Limit:      20,
			Offset:     0,
		}

		countQuery, countArgs := buildCountEpisodesQuery(opt)
		listQuery, listArgs := buildListEpisodesQuery(opt)

		assert.Contains(t, countQuery, "SELECT COUNT(DISTINCT e.id)")
		assert.NotContains(t, countQuery, "GROUP BY")
		assert.NotContains(t, countQuery, "ORDER BY")
		assert.NotContains(t, countQuery, "LIMIT")
		assert.NotContains(t, countQuery, "OFFSET")

		// Same WHERE text and same bound values, minus limit/offset.
		whereSQL, _ := buildEpisodeWhere(opt)
		assert.Contains(t, countQuery, whereSQL)
		assert.Contains(t, listQuery, whereSQL)
		require.Len(t, listArgs, len(countArgs)+2)
		assert.Equal(t, countArgs[0], listArgs[0])
	})
}
