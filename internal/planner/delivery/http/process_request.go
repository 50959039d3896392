package http

import "github.com/gin-gonic/gin"

func (h *handler) processTaskIDsReq(c *gin.Context) (taskIDsReq, error) {
	var req taskIDsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processApplyReq(c *gin.Context) (applyReq, error) {
	var req applyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
