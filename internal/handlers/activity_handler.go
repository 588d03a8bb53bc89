package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/farmergpt/internal/dto"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/httpresp"
	"github.com/BruksfildServices01/farmergpt/internal/middleware"
	"github.com/BruksfildServices01/farmergpt/internal/models"
	"github.com/BruksfildServices01/farmergpt/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type ActivityHandler struct {
	db *gorm.DB
	tz string
}

func NewActivityHandler(db *gorm.DB, tz string) *ActivityHandler {
	return &ActivityHandler{db: db, tz: tz}
}

// List pages through the caller's own activity, newest first. from/to are
// civil dates in the configured zone; unparseable values are ignored.
func (h *ActivityHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Base query, always scoped to the caller
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("user_id = ?", userID)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if from := c.Query("from"); from != "" {
		if start, err := timezone.StartOfDay(from, h.tz); err == nil {
			q = q.Where("created_at >= ?", start)
		}
	}

	if to := c.Query("to"); to != "" {
		if end, err := timezone.EndOfDay(to, h.tz); err == nil {
			q = q.Where("created_at < ?", end)
		}
	}

	// reusable for both the count and the page query
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, page, limit, total, dto.Activities(logs))
}
