package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/middleware"
	"productivity-planner/internal/model"
	"productivity-planner/pkg/response"
)

// ListTools godoc
// @Summary     List agent tools
// @Description Returns the function declarations of every registered tool, sorted by name.
// @Tags        Agent
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listToolsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/agent/tools [GET]
func (h *handler) ListTools(c *gin.Context) {
	if _, ok := middleware.GetScope(c); !ok {
		response.Unauthorized(c)
		return
	}

	response.OK(c, h.newListToolsResp(h.registry.Declarations()))
}

// ExecuteTool godoc
// @Summary     Call an agent tool
// @Description Runs the named tool with the JSON object body as its arguments. Tools never modify tasks.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       name path string true "Tool name"
// @Param       body body object false "Tool arguments"
// @Success     200  {object} executeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     404  {object} response.Resp "Tool Not Found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/agent/tools/{name} [POST]
func (h *handler) ExecuteTool(c *gin.Context) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	ctx := model.SetScopeToContext(c.Request.Context(), sc)

	name, params, err := h.processExecuteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.registry.Execute(ctx, name, params)
	if err != nil {
		h.l.Errorf(ctx, "agent.delivery.http.ExecuteTool %s: %v", name, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, executeResp{Tool: name, Result: result})
}
