package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/middleware"
	"productivity-planner/pkg/response"
)

// Create godoc
// @Summary     Create a habit
// @Description Creates an active habit. Custom frequency needs target_days (Mon..Sun).
// @Tags        Habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Habit data"
// @Success     200 {object} habitItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "habit.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, habitItemResp{Habit: newHabitResp(output.Habit, false)})
}

// List godoc
// @Summary     List habits
// @Description Lists active habits, optionally with this month's logs.
// @Tags        Habits
// @Produce     json
// @Security    BearerAuth
// @Param       include_logs query bool false "Attach logs since the start of the month"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "habit.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output, req.IncludeLogs))
}

// Log godoc
// @Summary     Log a habit
// @Description Marks the habit for a date (default today). Logging the same date again overwrites it.
// @Tags        Habits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string true  "Habit ID"
// @Param       body body logReq false "Date and completion"
// @Success     200 {object} logItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits/{id}/logs [POST]
func (h *handler) Log(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processLogReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Log(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "habit.delivery.http.Log: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, logItemResp{Log: newLogResp(output.Log)})
}

// Stats godoc
// @Summary     Habit statistics
// @Description Current streak, goal progress for the goal period and total completions.
// @Tags        Habits
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Habit ID"
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits/{id}/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Stats(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "habit.delivery.http.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Delete godoc
// @Summary     Delete a habit
// @Description Deactivates the habit. Its logs are kept.
// @Tags        Habits
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Habit ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "habit.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
