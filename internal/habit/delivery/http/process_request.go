package http

import "github.com/gin-gonic/gin"

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLogReq accepts an empty body: today, completed.
func (h *handler) processLogReq(c *gin.Context) (logReq, error) {
	var req logReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.HabitID = c.Param("id")
	return req, nil
}
