package dto

import "github.com/google/uuid"

type CrearAsistenciaRequest struct {
	PersonaID     uuid.UUID  `json:"persona_id" binding:"required"`
	ActividadID   *uuid.UUID `json:"actividad_id,omitempty"`
	HorarioID     *uuid.UUID `json:"horario_id,omitempty"`
	InvitadaPorID *uuid.UUID `json:"invitada_por_id,omitempty"`
	Fecha         string     `json:"fecha" binding:"required"` // 2006-01-02
	Observaciones string     `json:"observaciones"`
}

type AsistenciaResponse struct {
	ID            uuid.UUID  `json:"id"`
	PersonaID     uuid.UUID  `json:"persona_id"`
	ActividadID   *uuid.UUID `json:"actividad_id,omitempty"`
	HorarioID     *uuid.UUID `json:"horario_id,omitempty"`
	InvitadaPorID *uuid.UUID `json:"invitada_por_id,omitempty"`
	Fecha         string     `json:"fecha"`
	Observaciones string     `json:"observaciones,omitempty"`
	CreatedAt     string     `json:"created_at"`
}

type AsistenciaListResponse struct {
	Asistencias []AsistenciaResponse `json:"asistencias"`
	Total       int                  `json:"total"`
}

// SeleccionResponse is the attendance pre-fill suggestion. Both fields
// empty means the form should fall back to manual selection.
type SeleccionResponse struct {
	Actividad *ActividadResponse `json:"actividad,omitempty"`
	Horario   *HorarioResponse   `json:"horario,omitempty"`
}

type ResumenResponse struct {
	Fecha   string `json:"fecha"`
	Total   int    `json:"total"`
	Visitas int    `json:"visitas"`
}
