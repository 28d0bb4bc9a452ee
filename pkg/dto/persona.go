package dto

import (
	"github.com/google/uuid"
)

type CrearPersonaRequest struct {
	Nombres     string     `json:"nombres" binding:"required"`
	Apellidos   string     `json:"apellidos" binding:"required"`
	Correo      string     `json:"correo" binding:"omitempty,email"`
	Telefono    string     `json:"telefono"`
	Celular     string     `json:"celular"`
	Direccion   string     `json:"direccion"`
	Sexo        string     `json:"sexo"`
	EstadoCivil string     `json:"estado_civil"`
	Ocupacion   string     `json:"ocupacion"`
	Notas       string     `json:"notas"`
	Rol         string     `json:"rol" binding:"required,oneof=MIEMBRO VISITA INVITADO"`
	FamiliaID   *uuid.UUID `json:"familia_id,omitempty"`
}

// ActualizarPersonaRequest carries the editable fields. Rol is absent:
// it only changes through the conversion endpoint.
type ActualizarPersonaRequest struct {
	Nombres     string `json:"nombres" binding:"required"`
	Apellidos   string `json:"apellidos" binding:"required"`
	Correo      string `json:"correo" binding:"omitempty,email"`
	Telefono    string `json:"telefono"`
	Celular     string `json:"celular"`
	Direccion   string `json:"direccion"`
	Sexo        string `json:"sexo"`
	EstadoCivil string `json:"estado_civil"`
	Ocupacion   string `json:"ocupacion"`
	Notas       string `json:"notas"`
}

type PersonaResponse struct {
	ID            uuid.UUID  `json:"id"`
	Nombres       string     `json:"nombres"`
	Apellidos     string     `json:"apellidos"`
	Correo        string     `json:"correo,omitempty"`
	Telefono      string     `json:"telefono,omitempty"`
	Celular       string     `json:"celular,omitempty"`
	Direccion     string     `json:"direccion,omitempty"`
	Sexo          string     `json:"sexo,omitempty"`
	EstadoCivil   string     `json:"estado_civil,omitempty"`
	Ocupacion     string     `json:"ocupacion,omitempty"`
	Notas         string     `json:"notas,omitempty"`
	Rol           string     `json:"rol"`
	FamiliaID     *uuid.UUID `json:"familia_id,omitempty"`
	ConvertidaAID *uuid.UUID `json:"convertida_a_id,omitempty"`
	FotoURL       string     `json:"foto_url,omitempty"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
}

type AsignarFamiliaRequest struct {
	// Nil removes the person from their family.
	FamiliaID *uuid.UUID `json:"familia_id"`
}

type CrearRelacionRequest struct {
	FamiliarID   uuid.UUID `json:"familiar_id" binding:"required"`
	TipoRelacion string    `json:"tipo_relacion" binding:"required"`
}

// FamiliarEntry is one related person in the aggregated view.
type FamiliarEntry struct {
	Persona    PersonaResponse `json:"persona"`
	Fuente     string          `json:"fuente"`
	RelacionID *uuid.UUID      `json:"relacion_id,omitempty"`
}

type GrupoFamiliares struct {
	Tipo       string          `json:"tipo"`
	Familiares []FamiliarEntry `json:"familiares"`
}

type FamiliaresResponse struct {
	Grupos []GrupoFamiliares `json:"grupos"`
	Total  int               `json:"total"`
}

type SugerenciaResponse struct {
	Tipo      string           `json:"tipo"`
	Familia   *FamiliaResponse `json:"familia,omitempty"`
	PersonaID *uuid.UUID       `json:"persona_id,omitempty"`
	Mensaje   string           `json:"mensaje"`
}

// RelacionCreadaResponse bundles the created relation with its advisory
// family suggestion.
type RelacionCreadaResponse struct {
	ID         uuid.UUID          `json:"id"`
	PersonaID  uuid.UUID          `json:"persona_id"`
	FamiliarID uuid.UUID          `json:"familiar_id"`
	Tipo       string             `json:"tipo_relacion"`
	Sugerencia SugerenciaResponse `json:"sugerencia"`
	CreatedAt  string             `json:"created_at"`
}
