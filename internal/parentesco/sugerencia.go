package parentesco

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/models"
)

const (
	SugerenciaCrear   = "crear"
	SugerenciaAgregar = "agregar"
)

// Sugerencia is the advisory family-management hint attached to a newly
// created relation. It never blocks or performs the assignment itself.
type Sugerencia struct {
	Tipo    string          `json:"tipo"`
	Familia *models.Familia `json:"familia,omitempty"`
	Persona *uuid.UUID      `json:"persona_id,omitempty"` // who would be added
	Mensaje string          `json:"mensaje"`
}

// BuscarFamilia resolves a family by id. A nil result without error
// means the family does not exist.
type BuscarFamilia func(id uuid.UUID) (*models.Familia, error)

// AnalizarSugerencia decides whether linking a and b under tipoRelacion
// calls for creating a new family or adding one side to the other's.
//
// Any lookup failure degrades to a generic low-confidence "crear"
// suggestion; the relation-creation flow must never fail because the
// hint could not be computed. Both one-sided branches resolve the
// existing family so the caller can act on the hint directly.
func AnalizarSugerencia(a, b *models.Persona, tipoRelacion string, buscar BuscarFamilia) Sugerencia {
	if a == nil || b == nil {
		return sugerenciaGenerica()
	}

	switch {
	case a.FamiliaID == nil && b.FamiliaID == nil:
		return Sugerencia{
			Tipo: SugerenciaCrear,
			Mensaje: fmt.Sprintf("Ni %s ni %s pertenecen a una familia; podría crearse una nueva con la relación %s.",
				a.NombreCompleto(), b.NombreCompleto(), tipoRelacion),
		}

	case a.FamiliaID != nil && b.FamiliaID == nil:
		return sugerirAgregar(a, b, buscar)

	case b.FamiliaID != nil && a.FamiliaID == nil:
		return sugerirAgregar(b, a, buscar)

	default:
		return Sugerencia{
			Tipo:    SugerenciaAgregar,
			Mensaje: "Relación creada entre personas de familias existentes.",
		}
	}
}

// sugerirAgregar proposes adding sinFamilia to conFamilia's family.
func sugerirAgregar(conFamilia, sinFamilia *models.Persona, buscar BuscarFamilia) Sugerencia {
	if buscar == nil {
		return sugerenciaGenerica()
	}
	familia, err := buscar(*conFamilia.FamiliaID)
	if err != nil || familia == nil {
		return sugerenciaGenerica()
	}
	id := sinFamilia.ID
	return Sugerencia{
		Tipo:    SugerenciaAgregar,
		Familia: familia,
		Persona: &id,
		Mensaje: fmt.Sprintf("%s podría agregarse a la familia %s de %s.",
			sinFamilia.NombreCompleto(), familia.Apellido, conFamilia.NombreCompleto()),
	}
}

func sugerenciaGenerica() Sugerencia {
	return Sugerencia{
		Tipo:    SugerenciaCrear,
		Mensaje: "No se pudo analizar la situación familiar; considere crear una familia.",
	}
}
