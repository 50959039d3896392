package http

import (
	"github.com/gin-gonic/gin"

	"productivity-planner/internal/middleware"
	"productivity-planner/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task for the caller. due_date accepts YYYY-MM-DD or shortcuts such as "today".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task data"
// @Success     200  {object} taskItemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
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
		h.l.Errorf(ctx, "task.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskItemResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Lists the caller's tasks ordered by due date, undated tasks last.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       date       query string false "YYYY-MM-DD, today, tomorrow, this_week, next_week, this_month, next_7_days"
// @Param       start_date query string false "Range start (YYYY-MM-DD)"
// @Param       end_date   query string false "Range end (YYYY-MM-DD)"
// @Param       completed  query bool   false "Filter by completion"
// @Param       priority   query string false "low, medium or high"
// @Param       limit      query int    false "Page size (default: 50, max: 200)"
// @Param       offset     query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
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
		h.l.Errorf(ctx, "task.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task of the caller.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} taskItemResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskItemResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Omitted fields are kept, empty strings clear optional fields.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskItemResp(output.Task))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks the task as done and stamps completed_at.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} taskItemResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Complete(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskItemResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task of the caller.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
