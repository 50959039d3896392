package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/middleware"
	"productivity-planner/pkg/response"
)

// AnalyzePriorities godoc
// @Summary     Suggest priorities
// @Description Keyword-based priority suggestion for each task id. Unknown ids are left out.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body taskIDsReq true "Task ids"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/priorities [POST]
func (h *handler) AnalyzePriorities(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processTaskIDsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AnalyzePriorities(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "planner.delivery.http.AnalyzePriorities: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// EstimateDurations godoc
// @Summary     Estimate durations
// @Description Keyword-based duration estimate in minutes for each task id.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body taskIDsReq true "Task ids"
// @Success     200 {object} estimatesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/durations [POST]
func (h *handler) EstimateDurations(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processTaskIDsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.EstimateDurations(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "planner.delivery.http.EstimateDurations: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newEstimatesResp(output))
}

// Schedule godoc
// @Summary     Propose a schedule
// @Description Places tasks into free whole-hour slots, high priority first. Nothing is saved; tasks that do not fit are omitted.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body scheduleReq true "Scheduling request"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "planner.delivery.http.Schedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// Apply godoc
// @Summary     Apply a plan
// @Description Writes accepted priorities, durations and slots to the tasks, optionally mirroring placed tasks to Google Calendar.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body applyReq true "Updates"
// @Success     200 {object} applyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/apply [POST]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processApplyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Apply(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "planner.delivery.http.Apply: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newApplyResp(output))
}
