package models

import (
	"time"

	"github.com/google/uuid"
)

type Familia struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	IglesiaID     uuid.UUID  `json:"iglesia_id" db:"iglesia_id"`
	Apellido      string     `json:"apellido" db:"apellido"`
	Nombre        string     `json:"nombre,omitempty" db:"nombre"`
	Estado        string     `json:"estado,omitempty" db:"estado"`
	JefeFamiliaID *uuid.UUID `json:"jefe_familia_id,omitempty" db:"jefe_familia_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// VinculoFamiliar links two families. Direction is a storage artifact:
// which side is "origen" only reflects who created the link.
type VinculoFamiliar struct {
	ID                   uuid.UUID  `json:"id" db:"id"`
	FamiliaOrigenID      uuid.UUID  `json:"familia_origen_id" db:"familia_origen_id"`
	FamiliaRelacionadaID uuid.UUID  `json:"familia_relacionada_id" db:"familia_relacionada_id"`
	TipoVinculo          string     `json:"tipo_vinculo" db:"tipo_vinculo"`
	PersonaConectoraID   *uuid.UUID `json:"persona_conectora_id,omitempty" db:"persona_conectora_id"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
}

// OtraFamilia returns the id of the family on the far side of the link
// relative to desde.
func (v *VinculoFamiliar) OtraFamilia(desde uuid.UUID) uuid.UUID {
	if v.FamiliaOrigenID == desde {
		return v.FamiliaRelacionadaID
	}
	return v.FamiliaOrigenID
}
