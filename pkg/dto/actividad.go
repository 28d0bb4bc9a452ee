package dto

import "github.com/google/uuid"

type CrearTipoActividadRequest struct {
	Nombre string `json:"nombre" binding:"required"`
	Tipo   string `json:"tipo" binding:"required,oneof=Regular Especial"`
}

type TipoActividadResponse struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Tipo      string    `json:"tipo"`
	CreatedAt string    `json:"created_at"`
}

type CrearActividadRequest struct {
	TipoActividadID uuid.UUID `json:"tipo_actividad_id" binding:"required"`
	Nombre          string    `json:"nombre" binding:"required"`
	Fecha           string    `json:"fecha" binding:"required"` // 2006-01-02
	HoraInicio      string    `json:"hora_inicio"`
	HoraFin         string    `json:"hora_fin"`
	Estado          string    `json:"estado"`
}

type ActualizarActividadRequest struct {
	Nombre     string `json:"nombre" binding:"required"`
	Fecha      string `json:"fecha" binding:"required"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
	Estado     string `json:"estado"`
}

type ActividadResponse struct {
	ID              uuid.UUID         `json:"id"`
	TipoActividadID uuid.UUID         `json:"tipo_actividad_id"`
	Nombre          string            `json:"nombre"`
	Fecha           string            `json:"fecha"`
	HoraInicio      string            `json:"hora_inicio,omitempty"`
	HoraFin         string            `json:"hora_fin,omitempty"`
	Estado          string            `json:"estado,omitempty"`
	Horarios        []HorarioResponse `json:"horarios,omitempty"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

type CrearHorarioRequest struct {
	Fecha      string `json:"fecha" binding:"required"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
	Notas      string `json:"notas"`
}

type HorarioResponse struct {
	ID         uuid.UUID `json:"id"`
	Fecha      string    `json:"fecha"`
	HoraInicio string    `json:"hora_inicio,omitempty"`
	HoraFin    string    `json:"hora_fin,omitempty"`
	Notas      string    `json:"notas,omitempty"`
	CreatedAt  string    `json:"created_at"`
}
