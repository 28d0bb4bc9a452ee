package dto

import "github.com/google/uuid"

// WSEvent is a WebSocket message for the live dashboard feed.
type WSEvent struct {
	Type      string      `json:"type"` // asistencia_registrada, persona_convertida
	IglesiaID uuid.UUID   `json:"iglesia_id"`
	Data      interface{} `json:"data,omitempty"`
}
