package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Rol string

const (
	RolMiembro  Rol = "MIEMBRO"
	RolVisita   Rol = "VISITA"
	RolInvitado Rol = "INVITADO"
)

var (
	ErrNoEsVisita   = errors.New("la persona no es una visita")
	ErrYaConvertida = errors.New("la visita ya fue convertida")
)

type Persona struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	IglesiaID     uuid.UUID  `json:"iglesia_id" db:"iglesia_id"`
	Nombres       string     `json:"nombres" db:"nombres"`
	Apellidos     string     `json:"apellidos" db:"apellidos"`
	Correo        string     `json:"correo,omitempty" db:"correo"`
	Telefono      string     `json:"telefono,omitempty" db:"telefono"`
	Celular       string     `json:"celular,omitempty" db:"celular"`
	Direccion     string     `json:"direccion,omitempty" db:"direccion"`
	Sexo          string     `json:"sexo,omitempty" db:"sexo"`
	EstadoCivil   string     `json:"estado_civil,omitempty" db:"estado_civil"`
	Ocupacion     string     `json:"ocupacion,omitempty" db:"ocupacion"`
	FotoKey       string     `json:"-" db:"foto_key"`
	Notas         string     `json:"notas,omitempty" db:"notas"`
	Rol           Rol        `json:"rol" db:"rol"`
	FamiliaID     *uuid.UUID `json:"familia_id,omitempty" db:"familia_id"`
	ConvertidaAID *uuid.UUID `json:"convertida_a_id,omitempty" db:"convertida_a_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// NombreCompleto returns the display name used in messages and events.
func (p *Persona) NombreCompleto() string {
	if p.Apellidos == "" {
		return p.Nombres
	}
	return p.Nombres + " " + p.Apellidos
}

// PuedeConvertirse checks the preconditions of the VISITA -> MIEMBRO
// conversion. The guard on ConvertidaAID makes the conversion
// non-reentrant: a visitor is converted at most once.
func (p *Persona) PuedeConvertirse() error {
	if p.Rol != RolVisita {
		return ErrNoEsVisita
	}
	if p.ConvertidaAID != nil {
		return ErrYaConvertida
	}
	return nil
}

// Fuente tags how a displayed relationship was derived.
type Fuente string

const (
	FuenteDirecta Fuente = "directa"
	FuenteInversa Fuente = "inversa"
	FuenteFamilia Fuente = "familia"
)

// RelacionFamiliar is an explicit person-to-person relationship record,
// stored from PersonaID's point of view. The inverse view is derived,
// never persisted.
type RelacionFamiliar struct {
	ID           uuid.UUID `json:"id" db:"id"`
	PersonaID    uuid.UUID `json:"persona_id" db:"persona_id"`
	FamiliarID   uuid.UUID `json:"familiar_id" db:"familiar_id"`
	TipoRelacion string    `json:"tipo_relacion" db:"tipo_relacion"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
