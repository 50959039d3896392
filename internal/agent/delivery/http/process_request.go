package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingName = errors.New("tool name is required")

// processExecuteReq reads the tool name from the URI and the arguments
// object from the body. An empty body means no arguments.
func (h *handler) processExecuteReq(c *gin.Context) (string, map[string]interface{}, error) {
	name := c.Param("name")
	if name == "" {
		return "", nil, errMissingName
	}

	params := map[string]interface{}{}
	if c.Request.ContentLength == 0 {
		return name, params, nil
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		return "", nil, err
	}
	return name, params, nil
}
