package dto

import (
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type ActivityDTO struct {
	ID        uint            `json:"id"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  *uint           `json:"entity_id"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func Activity(l *models.AuditLog) ActivityDTO {
	out := ActivityDTO{
		ID:        l.ID,
		Action:    l.Action,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		CreatedAt: l.CreatedAt,
	}
	if l.Metadata != "" && json.Valid([]byte(l.Metadata)) {
		out.Metadata = json.RawMessage(l.Metadata)
	}
	return out
}

func Activities(list []models.AuditLog) []ActivityDTO {
	out := make([]ActivityDTO, 0, len(list))
	for i := range list {
		out = append(out, Activity(&list[i]))
	}
	return out
}
