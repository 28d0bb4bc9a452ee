// Package parentesco derives the display view of a person's family
// relationships and suggests what family-management action a new
// relation implies.
package parentesco

// TablaInversion maps a relation label to the label seen from the other
// side. The mapping is an explicit configuration: the labels are plain
// user-facing strings and nothing else in the system interprets them.
type TablaInversion map[string]string

// EtiquetaGenerica is used for inferred co-membership relations and as
// the inversion fallback for labels the table does not know.
const EtiquetaGenerica = "Familiar"

// InversionPredeterminada is the stock label table. Labels are
// sex-neutral on the derived side, so "Padre" y "Madre" ambos se
// invierten a "Hijo/a".
var InversionPredeterminada = TablaInversion{
	"Padre":               "Hijo/a",
	"Madre":               "Hijo/a",
	"Hijo/a":              "Padre/Madre",
	"Esposo/a":            "Esposo/a",
	"Hermano/a":           "Hermano/a",
	"Abuelo/a":            "Nieto/a",
	"Nieto/a":             "Abuelo/a",
	"Tío/a":               "Sobrino/a",
	"Sobrino/a":           "Tío/a",
	"Primo/a":             "Primo/a",
	"Cuñado/a":            "Cuñado/a",
	"Suegro/a":            "Yerno/Nuera",
	"Yerno/Nuera":         "Suegro/a",
	"Padrastro/Madrastra": "Hijastro/a",
	"Hijastro/a":          "Padrastro/Madrastra",
}

// Inversa returns the label as seen from the other person's side,
// falling back to the generic label when unknown.
func (t TablaInversion) Inversa(tipo string) string {
	if inv, ok := t[tipo]; ok {
		return inv
	}
	return EtiquetaGenerica
}
