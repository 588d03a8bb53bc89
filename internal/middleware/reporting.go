package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/reporting"
)

// Reporting sends server-side failures to Sentry and turns panics into a 500.
func Reporting(r *reporting.Reporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("panic: %v", rec)
				r.Capture(err, tags(c))
				_ = c.Error(err)
				httperr.Internal(c, "internal_error", "Something went wrong.")
			}
		}()

		c.Next()

		if c.Writer.Status() < http.StatusInternalServerError {
			return
		}
		for _, e := range c.Errors {
			r.Capture(e.Err, tags(c))
		}
	}
}

func tags(c *gin.Context) map[string]string {
	t := map[string]string{
		"method": c.Request.Method,
		"route":  c.FullPath(),
	}
	if id := c.GetString(ContextRequestID); id != "" {
		t["request_id"] = id
	}
	return t
}
