package parentesco

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/models"
)

func personaConFamilia(nombres string, familiaID *uuid.UUID) *models.Persona {
	return &models.Persona{ID: uuid.New(), Nombres: nombres, FamiliaID: familiaID}
}

func TestAnalizarSugerenciaSinFamilias(t *testing.T) {
	a := personaConFamilia("Pedro", nil)
	b := personaConFamilia("María", nil)

	s := AnalizarSugerencia(a, b, "Esposo/a", nil)

	if s.Tipo != SugerenciaCrear {
		t.Errorf("expected crear, got %s", s.Tipo)
	}
	if !strings.Contains(s.Mensaje, "Pedro") || !strings.Contains(s.Mensaje, "María") {
		t.Errorf("mensaje must name both persons, got %q", s.Mensaje)
	}
}

func TestAnalizarSugerenciaUnaFamilia(t *testing.T) {
	familiaID := uuid.New()
	familia := &models.Familia{ID: familiaID, Apellido: "García"}
	buscar := func(id uuid.UUID) (*models.Familia, error) {
		if id != familiaID {
			t.Fatalf("looked up unexpected family %s", id)
		}
		return familia, nil
	}

	a := personaConFamilia("Pedro", &familiaID)
	b := personaConFamilia("María", nil)

	tests := []struct {
		name string
		x, y *models.Persona
	}{
		{"con familia primero", a, b},
		{"con familia segundo", b, a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AnalizarSugerencia(tt.x, tt.y, "Esposo/a", buscar)

			if s.Tipo != SugerenciaAgregar {
				t.Fatalf("expected agregar, got %s", s.Tipo)
			}
			if s.Familia == nil || s.Familia.ID != familiaID {
				t.Error("both one-sided branches must carry the resolved family")
			}
			if s.Persona == nil || *s.Persona != b.ID {
				t.Error("the family-less person is the one to add")
			}
		})
	}
}

func TestAnalizarSugerenciaAmbasFamilias(t *testing.T) {
	fa := uuid.New()
	fb := uuid.New()
	a := personaConFamilia("Pedro", &fa)
	b := personaConFamilia("María", &fb)

	s := AnalizarSugerencia(a, b, "Primo/a", func(uuid.UUID) (*models.Familia, error) {
		t.Fatal("no lookup needed when both sides have a family")
		return nil, nil
	})

	if s.Tipo != SugerenciaAgregar {
		t.Errorf("expected agregar, got %s", s.Tipo)
	}
	if s.Familia != nil || s.Persona != nil {
		t.Error("no actionable target when both sides already have families")
	}
}

func TestAnalizarSugerenciaFalloDeConsulta(t *testing.T) {
	familiaID := uuid.New()
	a := personaConFamilia("Pedro", &familiaID)
	b := personaConFamilia("María", nil)

	tests := []struct {
		name   string
		buscar BuscarFamilia
	}{
		{"error de consulta", func(uuid.UUID) (*models.Familia, error) { return nil, errors.New("db down") }},
		{"familia inexistente", func(uuid.UUID) (*models.Familia, error) { return nil, nil }},
		{"sin buscador", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AnalizarSugerencia(a, b, "Esposo/a", tt.buscar)

			// Degrades, never fails: the relation itself is unaffected.
			if s.Tipo != SugerenciaCrear {
				t.Errorf("expected generic crear fallback, got %s", s.Tipo)
			}
			if s.Familia != nil {
				t.Error("fallback carries no resolved family")
			}
		})
	}
}

func TestAnalizarSugerenciaPersonaNil(t *testing.T) {
	s := AnalizarSugerencia(nil, personaConFamilia("María", nil), "Esposo/a", nil)
	if s.Tipo != SugerenciaCrear {
		t.Errorf("expected fallback crear, got %s", s.Tipo)
	}
}
