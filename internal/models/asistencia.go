package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrFechaNoCoincide rejects an attendance record whose fecha differs
// from its activity's fecha. Checked at creation only, never
// retroactively.
var ErrFechaNoCoincide = errors.New("la fecha de asistencia no coincide con la fecha de la actividad")

// Asistencia is one attendance record (historial de visita). Actividad y
// horario son opcionales: una visita puede registrarse sin actividad.
type Asistencia struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	IglesiaID     uuid.UUID  `json:"iglesia_id" db:"iglesia_id"`
	PersonaID     uuid.UUID  `json:"persona_id" db:"persona_id"`
	ActividadID   *uuid.UUID `json:"actividad_id,omitempty" db:"actividad_id"`
	HorarioID     *uuid.UUID `json:"horario_id,omitempty" db:"horario_id"`
	InvitadaPorID *uuid.UUID `json:"invitada_por_id,omitempty" db:"invitada_por_id"`
	Fecha         time.Time  `json:"fecha" db:"fecha"`
	Observaciones string     `json:"observaciones,omitempty" db:"observaciones"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// ValidarFecha enforces the fecha invariant against the linked activity.
// actividad is nil when the record has no activity.
func (a *Asistencia) ValidarFecha(actividad *Actividad) error {
	if actividad == nil {
		return nil
	}
	ay, am, ad := a.Fecha.Date()
	cy, cm, cd := actividad.Fecha.Date()
	if ay != cy || am != cm || ad != cd {
		return ErrFechaNoCoincide
	}
	return nil
}

// ResumenAsistencia is a per-day attendance rollup maintained by the
// resumen worker from published events.
type ResumenAsistencia struct {
	IglesiaID uuid.UUID `json:"iglesia_id" db:"iglesia_id"`
	Fecha     time.Time `json:"fecha" db:"fecha"`
	Total     int       `json:"total" db:"total"`
	Visitas   int       `json:"visitas" db:"visitas"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
