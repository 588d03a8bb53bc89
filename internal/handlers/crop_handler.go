package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/farmergpt/internal/dto"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/httpresp"
	"github.com/BruksfildServices01/farmergpt/internal/middleware"
	ucCrop "github.com/BruksfildServices01/farmergpt/internal/usecase/crop"
)

// ======================================================
// HANDLER
// ======================================================

type CropHandler struct {
	list   *ucCrop.ListCrops
	create *ucCrop.CreateCrop
	get    *ucCrop.GetCrop
	update *ucCrop.UpdateCrop
	remove *ucCrop.DeleteCrop
}

func NewCropHandler(
	list *ucCrop.ListCrops,
	create *ucCrop.CreateCrop,
	get *ucCrop.GetCrop,
	update *ucCrop.UpdateCrop,
	remove *ucCrop.DeleteCrop,
) *CropHandler {
	return &CropHandler{
		list:   list,
		create: create,
		get:    get,
		update: update,
		remove: remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CropRequest is used by POST and PUT. A client-sent "farmer" is ignored.
type CropRequest struct {
	Name                string           `json:"name" binding:"required,max=100"`
	Variety             *string          `json:"variety" binding:"omitempty,max=100"`
	Area                *decimal.Decimal `json:"area" binding:"required"`
	PlantingDate        string           `json:"planting_date" binding:"required"`
	ExpectedHarvestDate string           `json:"expected_harvest_date" binding:"required"`
	Status              *string          `json:"status" binding:"omitempty,oneof=planning planted growing harvested"`
	Notes               *string          `json:"notes"`
}

type CropPatchRequest struct {
	Name                *string          `json:"name" binding:"omitempty,max=100"`
	Variety             *string          `json:"variety" binding:"omitempty,max=100"`
	Area                *decimal.Decimal `json:"area"`
	PlantingDate        *string          `json:"planting_date"`
	ExpectedHarvestDate *string          `json:"expected_harvest_date"`
	Status              *string          `json:"status" binding:"omitempty,oneof=planning planted growing harvested"`
	Notes               *string          `json:"notes"`
}

func (r CropRequest) fields() ucCrop.Fields {
	return ucCrop.Fields{
		Name:                &r.Name,
		Variety:             r.Variety,
		Area:                r.Area,
		PlantingDate:        &r.PlantingDate,
		ExpectedHarvestDate: &r.ExpectedHarvestDate,
		Status:              r.Status,
		Notes:               r.Notes,
	}
}

func (r CropPatchRequest) fields() ucCrop.Fields {
	return ucCrop.Fields{
		Name:                r.Name,
		Variety:             r.Variety,
		Area:                r.Area,
		PlantingDate:        r.PlantingDate,
		ExpectedHarvestDate: r.ExpectedHarvestDate,
		Status:              r.Status,
		Notes:               r.Notes,
	}
}

func cropNotFound(c *gin.Context) {
	httperr.Respond(c, httperr.NotFoundError("crop_not_found", "Not found."))
}

// ======================================================
// COLLECTION
// ======================================================

func (h *CropHandler) List(c *gin.Context) {
	crops, err := h.list.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.Crops(crops))
}

func (h *CropHandler) Create(c *gin.Context) {
	var req CropRequest
	if !bindJSON(c, &req) {
		return
	}

	crop, err := h.create.Execute(c.Request.Context(), middleware.UserID(c), req.fields())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.Crop(crop))
}

// ======================================================
// ITEM
// ======================================================

func (h *CropHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		cropNotFound(c)
		return
	}

	crop, err := h.get.Execute(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Crop(crop))
}

func (h *CropHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		cropNotFound(c)
		return
	}

	var req CropRequest
	if !bindJSON(c, &req) {
		return
	}

	crop, err := h.update.Execute(c.Request.Context(), middleware.UserID(c), id, req.fields(), true)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Crop(crop))
}

func (h *CropHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		cropNotFound(c)
		return
	}

	var req CropPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	crop, err := h.update.Execute(c.Request.Context(), middleware.UserID(c), id, req.fields(), false)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Crop(crop))
}

func (h *CropHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		cropNotFound(c)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
