package dto

import "github.com/google/uuid"

type CrearFamiliaRequest struct {
	Apellido      string     `json:"apellido" binding:"required"`
	Nombre        string     `json:"nombre"`
	Estado        string     `json:"estado"`
	JefeFamiliaID *uuid.UUID `json:"jefe_familia_id,omitempty"`
}

type FamiliaResponse struct {
	ID            uuid.UUID         `json:"id"`
	Apellido      string            `json:"apellido"`
	Nombre        string            `json:"nombre,omitempty"`
	Estado        string            `json:"estado,omitempty"`
	JefeFamiliaID *uuid.UUID        `json:"jefe_familia_id,omitempty"`
	Miembros      []PersonaResponse `json:"miembros,omitempty"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}

type CrearVinculoRequest struct {
	FamiliaRelacionadaID uuid.UUID  `json:"familia_relacionada_id" binding:"required"`
	TipoVinculo          string     `json:"tipo_vinculo" binding:"required"`
	PersonaConectoraID   *uuid.UUID `json:"persona_conectora_id,omitempty"`
}

// VinculoResponse presents a link from one family's point of view: the
// stored origen/relacionada direction is resolved to "the other family".
type VinculoResponse struct {
	ID                 uuid.UUID        `json:"id"`
	Familia            *FamiliaResponse `json:"familia,omitempty"`
	FamiliaID          uuid.UUID        `json:"familia_id"`
	TipoVinculo        string           `json:"tipo_vinculo"`
	PersonaConectoraID *uuid.UUID       `json:"persona_conectora_id,omitempty"`
	CreatedAt          string           `json:"created_at"`
}
