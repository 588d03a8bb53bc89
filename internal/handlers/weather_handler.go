package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/httpresp"
	"github.com/BruksfildServices01/farmergpt/internal/weather"
)

type WeatherHandler struct {
	gateway         *weather.Gateway
	defaultLocation string
}

func NewWeatherHandler(gateway *weather.Gateway, defaultLocation string) *WeatherHandler {
	return &WeatherHandler{
		gateway:         gateway,
		defaultLocation: defaultLocation,
	}
}

func (h *WeatherHandler) Get(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		location = h.defaultLocation
	}

	report, err := h.gateway.Get(c.Request.Context(), location)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, report)
}
