package models

import (
	"time"

	"github.com/google/uuid"
)

// EventoAsistencia is the message published to NATS when an attendance
// record is created.
type EventoAsistencia struct {
	AsistenciaID  uuid.UUID  `json:"asistencia_id"`
	IglesiaID     uuid.UUID  `json:"iglesia_id"`
	PersonaID     uuid.UUID  `json:"persona_id"`
	PersonaNombre string     `json:"persona_nombre"`
	Rol           Rol        `json:"rol"`
	ActividadID   *uuid.UUID `json:"actividad_id,omitempty"`
	Fecha         time.Time  `json:"fecha"`
}

// EventoConversion is published when a visitor is converted to a member.
type EventoConversion struct {
	IglesiaID     uuid.UUID `json:"iglesia_id"`
	VisitaID      uuid.UUID `json:"visita_id"`
	MiembroID     uuid.UUID `json:"miembro_id"`
	PersonaNombre string    `json:"persona_nombre"`
	Fecha         time.Time `json:"fecha"`
}
