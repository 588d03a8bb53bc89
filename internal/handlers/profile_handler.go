package handlers

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/farmergpt/internal/dto"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/httpresp"
	"github.com/BruksfildServices01/farmergpt/internal/middleware"
	ucProfile "github.com/BruksfildServices01/farmergpt/internal/usecase/profile"
)

type ProfileHandler struct {
	get    *ucProfile.GetProfile
	update *ucProfile.UpdateProfile
}

func NewProfileHandler(
	get *ucProfile.GetProfile,
	update *ucProfile.UpdateProfile,
) *ProfileHandler {
	return &ProfileHandler{
		get:    get,
		update: update,
	}
}

// --------- Requests ---------

// UpdateProfileRequest accepts the writable fields plus the read-only ones a
// client may echo back from a GET. Any other key is rejected.
type UpdateProfileRequest struct {
	Phone           *string         `json:"phone" binding:"omitempty,max=15"`
	Location        *string         `json:"location" binding:"omitempty,max=255"`
	LandSize        json.RawMessage `json:"land_size"`
	ExperienceYears *int            `json:"experience_years" binding:"omitempty,min=0"`

	ID        json.RawMessage `json:"id"`
	User      json.RawMessage `json:"user"`
	CreatedAt json.RawMessage `json:"created_at"`
	UpdatedAt json.RawMessage `json:"updated_at"`
}

func (r *UpdateProfileRequest) readOnly() []string {
	var out []string
	for name, raw := range map[string]json.RawMessage{
		"id":         r.ID,
		"user":       r.User,
		"created_at": r.CreatedAt,
		"updated_at": r.UpdatedAt,
	} {
		if len(raw) > 0 {
			out = append(out, name)
		}
	}
	return out
}

func (r *UpdateProfileRequest) landSize() (*decimal.NullDecimal, error) {
	if len(r.LandSize) == 0 {
		return nil, nil
	}
	if string(r.LandSize) == "null" {
		return &decimal.NullDecimal{}, nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(r.LandSize); err != nil {
		return nil, err
	}
	nd := decimal.NewNullDecimal(d)
	return &nd, nil
}

// --------- Handlers ---------

func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.get.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Profile(p))
}

// Update serves both PUT and PATCH; neither requires any field.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest

	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.Respond(c, httperr.Validation("invalid_request", "Invalid request body.", err.Error()))
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		httperr.Respond(c, httperr.Validation("invalid_request", "Invalid request body.", err.Error()))
		return
	}

	landSize, err := req.landSize()
	if err != nil {
		httperr.Respond(c, httperr.Validation(
			"invalid_land_size",
			"A valid number is required.",
			map[string][]string{"land_size": {"A valid number is required."}},
		))
		return
	}

	p, err := h.update.Execute(c.Request.Context(), ucProfile.UpdateInput{
		UserID:          middleware.UserID(c),
		Phone:           req.Phone,
		Location:        req.Location,
		LandSize:        landSize,
		ExperienceYears: req.ExperienceYears,
		ReadOnly:        req.readOnly(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Profile(p))
}
