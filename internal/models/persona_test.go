package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestPuedeConvertirse(t *testing.T) {
	convertidaA := uuid.New()

	tests := []struct {
		name    string
		persona Persona
		wantErr error
	}{
		{
			name:    "visita sin convertir",
			persona: Persona{Rol: RolVisita},
			wantErr: nil,
		},
		{
			name:    "miembro",
			persona: Persona{Rol: RolMiembro},
			wantErr: ErrNoEsVisita,
		},
		{
			name:    "invitado",
			persona: Persona{Rol: RolInvitado},
			wantErr: ErrNoEsVisita,
		},
		{
			name:    "visita ya convertida",
			persona: Persona{Rol: RolVisita, ConvertidaAID: &convertidaA},
			wantErr: ErrYaConvertida,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.persona.PuedeConvertirse()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PuedeConvertirse() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNombreCompleto(t *testing.T) {
	p := Persona{Nombres: "Ana", Apellidos: "García"}
	if got := p.NombreCompleto(); got != "Ana García" {
		t.Errorf("NombreCompleto() = %q, want %q", got, "Ana García")
	}

	sinApellido := Persona{Nombres: "Ana"}
	if got := sinApellido.NombreCompleto(); got != "Ana" {
		t.Errorf("NombreCompleto() = %q, want %q", got, "Ana")
	}
}
