package http

import (
	"github.com/gin-gonic/gin"

	"episode-srv/pkg/response"
	"episode-srv/pkg/scope"
)

// @Summary List colors
// @Description All paint colors, ordered by name.
// @Tags Reference
// @Produce json
// @Success 200 {object} listColorsResp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/reference/colors [get]
func (h *handler) ListColors(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	colors, err := h.uc.ListColors(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "reference.delivery.http.ListColors: usecase ListColors failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, h.newListColorsResp(colors))
}

// @Summary List subjects
// @Description All subject-matter entries, ordered by name.
// @Tags Reference
// @Produce json
// @Success 200 {object} listSubjectsResp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/reference/subjects [get]
func (h *handler) ListSubjects(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	subjects, err := h.uc.ListSubjects(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "reference.delivery.http.ListSubjects: usecase ListSubjects failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, h.newListSubjectsResp(subjects))
}

// @Summary List tools
// @Description All painting tools, ordered by name.
// @Tags Reference
// @Produce json
// @Success 200 {object} listToolsResp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/reference/tools [get]
func (h *handler) ListTools(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	tools, err := h.uc.ListTools(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "reference.delivery.http.ListTools: usecase ListTools failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, h.newListToolsResp(tools))
}

// @Summary List techniques
// @Description All painting techniques, ordered by name.
// @Tags Reference
// @Produce json
// @Success 200 {object} listTechniquesResp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Security Bearer
// @Router /api/reference/techniques [get]
func (h *handler) ListTechniques(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	techniques, err := h.uc.ListTechniques(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "reference.delivery.http.ListTechniques: usecase ListTechniques failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, h.newListTechniquesResp(techniques))
}
