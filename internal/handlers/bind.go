package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/farmergpt/internal/httperr"
)

// bindJSON binds and validates the body, rendering a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Respond(c, invalidRequest(err))
		return false
	}
	return true
}

func invalidRequest(err error) *httperr.Error {
	if errors.Is(err, io.EOF) {
		return httperr.Validation("invalid_request", "Request body is required.", nil)
	}
	return httperr.Validation("invalid_request", "Invalid request body.", err.Error())
}

// pathID parses a numeric :id; ok is false for anything else.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
