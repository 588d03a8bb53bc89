package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/farmergpt/internal/dto"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/httpresp"
	"github.com/BruksfildServices01/farmergpt/internal/middleware"
	ucProfile "github.com/BruksfildServices01/farmergpt/internal/usecase/profile"
)

type MeHandler struct {
	profile *ucProfile.GetProfile
}

func NewMeHandler(profile *ucProfile.GetProfile) *MeHandler {
	return &MeHandler{profile: profile}
}

// GetMe returns the caller and their profile, creating the profile if needed.
func (h *MeHandler) GetMe(c *gin.Context) {
	p, err := h.profile.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"user":    dto.User(&p.User),
		"profile": dto.Profile(p),
	})
}
