package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/farmergpt/internal/advisory"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/httpresp"
)

type SuggestionHandler struct {
	catalog *advisory.Catalog
}

func NewSuggestionHandler(catalog *advisory.Catalog) *SuggestionHandler {
	return &SuggestionHandler{catalog: catalog}
}

// Get returns one entry for ?crop=, or the whole catalog without it.
func (h *SuggestionHandler) Get(c *gin.Context) {
	name := strings.TrimSpace(c.Query("crop"))
	if name == "" {
		httpresp.OK(c, gin.H{
			"crops":   h.catalog,
			"success": true,
		})
		return
	}

	entry, err := h.catalog.Lookup(name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"crop":    entry,
		"success": true,
	})
}
