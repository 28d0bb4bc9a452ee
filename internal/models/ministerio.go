package models

import (
	"time"

	"github.com/google/uuid"
)

type Ministerio struct {
	ID          uuid.UUID `json:"id" db:"id"`
	IglesiaID   uuid.UUID `json:"iglesia_id" db:"iglesia_id"`
	Nombre      string    `json:"nombre" db:"nombre"`
	Descripcion string    `json:"descripcion,omitempty" db:"descripcion"`
	Estado      string    `json:"estado,omitempty" db:"estado"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
