package models

import (
	"time"

	"github.com/google/uuid"
)

type TipoActividadClase string

const (
	TipoRegular  TipoActividadClase = "Regular"
	TipoEspecial TipoActividadClase = "Especial"
)

type TipoActividad struct {
	ID        uuid.UUID          `json:"id" db:"id"`
	IglesiaID uuid.UUID          `json:"iglesia_id" db:"iglesia_id"`
	Nombre    string             `json:"nombre" db:"nombre"`
	Tipo      TipoActividadClase `json:"tipo" db:"tipo"`
	CreatedAt time.Time          `json:"created_at" db:"created_at"`
}

// Actividad is a dated church activity. HoraInicio/HoraFin are free-form
// HH:MM strings entered by users and must never be trusted to parse.
type Actividad struct {
	ID              uuid.UUID `json:"id" db:"id"`
	IglesiaID       uuid.UUID `json:"iglesia_id" db:"iglesia_id"`
	TipoActividadID uuid.UUID `json:"tipo_actividad_id" db:"tipo_actividad_id"`
	Nombre          string    `json:"nombre" db:"nombre"`
	Fecha           time.Time `json:"fecha" db:"fecha"`
	HoraInicio      string    `json:"hora_inicio,omitempty" db:"hora_inicio"`
	HoraFin         string    `json:"hora_fin,omitempty" db:"hora_fin"`
	Estado          string    `json:"estado,omitempty" db:"estado"`
	Horarios        []Horario `json:"horarios,omitempty" db:"-"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

type Horario struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ActividadID uuid.UUID `json:"actividad_id" db:"actividad_id"`
	Fecha       time.Time `json:"fecha" db:"fecha"`
	HoraInicio  string    `json:"hora_inicio,omitempty" db:"hora_inicio"`
	HoraFin     string    `json:"hora_fin,omitempty" db:"hora_fin"`
	Notas       string    `json:"notas,omitempty" db:"notas"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
