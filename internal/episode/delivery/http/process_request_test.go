package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"episode-srv/internal/episode"
	"episode-srv/pkg/log"
)

func newTestContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/episodes?"+rawQuery, nil)
	return c
}

func TestProcessListEpisodesRequest(t *testing.T) {
	h := &handler{l: log.NewNoop()}

	type testCase struct {
		rawQuery string
		expect   listEpisodesReq
	}

	tcs := map[string]testCase{
		"empty query": {
			rawQuery: "",
			expect:   listEpisodesReq{},
		},
		"scalar filters": {
			rawQuery: "season=31&title=Mountain+Waterfall&page=2&per_page=50",
			expect: listEpisodesReq{
				Season:  31,
				Title:   "Mountain Waterfall",
				Page:    2,
				PerPage: 50,
			},
		},
		"repeated list params": {
			rawQuery: "episode_id=1&episode_id=2&month=1&month=12&color_id=7",
			expect: listEpisodesReq{
				EpisodeIDs: []int64{1, 2},
				Months:     []int64{1, 12},
				ColorIDs:   []int64{7},
			},
		},
		"non-numeric entries dropped": {
			rawQuery: "episode_id=1&episode_id=abc&episode_id=3&month=x",
			expect: listEpisodesReq{
				EpisodeIDs: []int64{1, 3},
			},
		},
		"unparseable pagination degrades to defaults": {
			rawQuery: "page=abc&per_page=",
			expect:   listEpisodesReq{},
		},
		"string ids trimmed, empties dropped": {
			rawQuery: "tool_id=+TL001+&tool_id=&technique_id=T004",
			expect: listEpisodesReq{
				ToolIDs:      []string{"TL001"},
				TechniqueIDs: []string{"T004"},
			},
		},
		"name filters keep values as given": {
			rawQuery: "color=Titanium+White&subject=+tree+&tool=Fan+Brush&technique=Wet-on-Wet",
			expect: listEpisodesReq{
				ColorNames:     []string{"Titanium White"},
				SubjectNames:   []string{"tree"},
				ToolNames:      []string{"Fan Brush"},
				TechniqueNames: []string{"Wet-on-Wet"},
			},
		},
		"filter type uppercased": {
			rawQuery: "filter_type=or",
			expect: listEpisodesReq{
				FilterType: "OR",
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			c := newTestContext(t, tc.rawQuery)

			req, _ := h.processListEpisodesRequest(c)

			assert.Equal(t, tc.expect, req)
		})
	}
}

func TestListEpisodesReqToInput(t *testing.T) {
	t.Run("defaults to AND logic", func(t *testing.T) {
		in := listEpisodesReq{}.toInput()
		assert.Equal(t, episode.FilterLogicAnd, in.Logic)
	})

	t.Run("unknown filter type falls back to AND", func(t *testing.T) {
		in := listEpisodesReq{FilterType: "XOR"}.toInput()
		assert.Equal(t, episode.FilterLogicAnd, in.Logic)
	})

	t.Run("OR is honoured", func(t *testing.T) {
		in := listEpisodesReq{FilterType: "OR"}.toInput()
		assert.Equal(t, episode.FilterLogicOr, in.Logic)
	})

	t.Run("pagination carried through", func(t *testing.T) {
		in := listEpisodesReq{Page: 3, PerPage: 40}.toInput()
		assert.Equal(t, 3, in.Paginate.Page)
		assert.Equal(t, int64(40), in.Paginate.Limit)
	})
}
