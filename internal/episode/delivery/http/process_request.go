package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"episode-srv/internal/model"
	"episode-srv/pkg/scope"
)

// Raw query parameters are unordered and possibly repeated. Invalid entries
// never fail the request: non-numeric values are dropped, bad pagination
// degrades to defaults.
func (h *handler) processListEpisodesRequest(c *gin.Context) (listEpisodesReq, model.Scope) {
	req := listEpisodesReq{
		EpisodeIDs: queryInt64List(c, "episode_id"),
		Season:     queryInt64(c, "season"),
		Title:      strings.TrimSpace(c.Query("title")),
		Months:     queryInt64List(c, "month"),

		ColorIDs:     queryInt64List(c, "color_id"),
		SubjectIDs:   queryInt64List(c, "subject_id"),
		ToolIDs:      queryStringIDList(c, "tool_id"),
		TechniqueIDs: queryStringIDList(c, "technique_id"),

		ColorNames:     queryNameList(c, "color"),
		SubjectNames:   queryNameList(c, "subject"),
		ToolNames:      queryNameList(c, "tool"),
		TechniqueNames: queryNameList(c, "technique"),

		FilterType: strings.ToUpper(c.Query("filter_type")),

		Page:    queryInt64(c, "page"),
		PerPage: queryInt64(c, "per_page"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc
}

// queryInt64 parses a single integer parameter; anything unparseable is
// treated as absent.
func queryInt64(c *gin.Context, key string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(c.Query(key)), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// queryInt64List parses a repeatable integer parameter, silently dropping
// non-numeric entries.
func queryInt64List(c *gin.Context, key string) []int64 {
	var out []int64
	for _, raw := range c.QueryArray(key) {
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// queryStringIDList parses a repeatable string-id parameter, trimming and
// dropping empty entries.
func queryStringIDList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// queryNameList parses a repeatable name parameter. Values are used as
// given, only trimmed.
func queryNameList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		out = append(out, strings.TrimSpace(raw))
	}
	return out
}
