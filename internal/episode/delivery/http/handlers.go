package http

import (
	"github.com/gin-gonic/gin"

	"episode-srv/pkg/response"
)

// @Summary List episodes
// @Description Filterable, paginated episode catalog. Association filters combine under AND or OR logic.
// @Tags Episodes
// @Produce json
// @Param episode_id query []int false "Episode ids" collectionFormat(multi)
// @Param season query int false "Season number"
// @Param title query string false "Title substring, case-insensitive"
// @Param month query []int false "Air-date months (1-12)" collectionFormat(multi)
// @Param color_id query []int false "Color ids" collectionFormat(multi)
// @Param subject_id query []int false "Subject ids" collectionFormat(multi)
// @Param tool_id query []string false "Tool ids" collectionFormat(multi)
// @Param technique_id query []string false "Technique ids" collectionFormat(multi)
// @Param color query []string false "Color name substrings" collectionFormat(multi)
// @Param subject query []string false "Subject name substrings" collectionFormat(multi)
// @Param tool query []string false "Tool name substrings" collectionFormat(multi)
// @Param technique query []string false "Technique name substrings" collectionFormat(multi)
// @Param filter_type query string false "AND or OR (default AND)"
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Items per page (default 20, max 100)"
// @Success 200 {object} listEpisodesResp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/episodes [get]
func (h *handler) ListEpisodes(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processListEpisodesRequest(c)

	o, err := h.uc.ListEpisodes(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "episode.delivery.http.ListEpisodes: usecase ListEpisodes failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, h.newListEpisodesResp(o))
}
