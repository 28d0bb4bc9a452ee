package dto

import "github.com/google/uuid"

type CrearMinisterioRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
	Estado      string `json:"estado"`
}

type MinisterioResponse struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	Estado      string    `json:"estado,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type AsignarMinisterioRequest struct {
	PersonaID uuid.UUID `json:"persona_id" binding:"required"`
}
