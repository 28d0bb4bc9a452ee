package parentesco

import (
	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/models"
)

// RelacionConPersona pairs an explicit relation record with the person
// on its far side, already resolved by the caller.
type RelacionConPersona struct {
	Relacion models.RelacionFamiliar
	Persona  models.Persona
}

// Familiar is one display entry: a related person, the label under
// which the pair is shown, and how the entry was derived.
type Familiar struct {
	Persona    models.Persona `json:"persona"`
	Fuente     models.Fuente  `json:"fuente"`
	RelacionID *uuid.UUID     `json:"relacion_id,omitempty"`
}

// Grupo collects every familiar shown under one relation label.
type Grupo struct {
	Tipo       string     `json:"tipo"`
	Familiares []Familiar `json:"familiares"`
}

// Agrupar merges the three relation sources into one deduplicated,
// display-ready list grouped by label.
//
// Dedup rule: an explicit record (directa o inversa) for a pair always
// beats the inferred co-membership entry for the same pair, and direct
// records beat inverse ones. Group order and order within a group
// follow first appearance in the inputs, so the output is deterministic
// for a given snapshot.
func Agrupar(directas, inversas []RelacionConPersona, coMiembros []models.Persona, tabla TablaInversion) []Grupo {
	if tabla == nil {
		tabla = InversionPredeterminada
	}

	vistos := make(map[uuid.UUID]bool)
	grupos := make(map[string]*Grupo)
	var orden []string

	agregar := func(tipo string, f Familiar) {
		g, ok := grupos[tipo]
		if !ok {
			g = &Grupo{Tipo: tipo}
			grupos[tipo] = g
			orden = append(orden, tipo)
		}
		g.Familiares = append(g.Familiares, f)
	}

	for _, r := range directas {
		if vistos[r.Persona.ID] {
			continue
		}
		vistos[r.Persona.ID] = true
		id := r.Relacion.ID
		agregar(r.Relacion.TipoRelacion, Familiar{
			Persona:    r.Persona,
			Fuente:     models.FuenteDirecta,
			RelacionID: &id,
		})
	}

	for _, r := range inversas {
		if vistos[r.Persona.ID] {
			continue
		}
		vistos[r.Persona.ID] = true
		id := r.Relacion.ID
		agregar(tabla.Inversa(r.Relacion.TipoRelacion), Familiar{
			Persona:    r.Persona,
			Fuente:     models.FuenteInversa,
			RelacionID: &id,
		})
	}

	for _, p := range coMiembros {
		if vistos[p.ID] {
			continue
		}
		vistos[p.ID] = true
		agregar(EtiquetaGenerica, Familiar{
			Persona: p,
			Fuente:  models.FuenteFamilia,
		})
	}

	resultado := make([]Grupo, 0, len(orden))
	for _, tipo := range orden {
		resultado = append(resultado, *grupos[tipo])
	}
	return resultado
}
