package parentesco

import (
	"testing"

	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/models"
)

func persona(nombres string) models.Persona {
	return models.Persona{ID: uuid.New(), Nombres: nombres}
}

func relacion(tipo string, p models.Persona) RelacionConPersona {
	return RelacionConPersona{
		Relacion: models.RelacionFamiliar{ID: uuid.New(), FamiliarID: p.ID, TipoRelacion: tipo},
		Persona:  p,
	}
}

func buscarGrupo(t *testing.T, grupos []Grupo, tipo string) Grupo {
	t.Helper()
	for _, g := range grupos {
		if g.Tipo == tipo {
			return g
		}
	}
	t.Fatalf("no group %q in %+v", tipo, grupos)
	return Grupo{}
}

func TestAgruparPorTipo(t *testing.T) {
	esposa := persona("María")
	hijo := persona("Juan")
	hija := persona("Ana")

	grupos := Agrupar(
		[]RelacionConPersona{
			relacion("Esposo/a", esposa),
			relacion("Hijo/a", hijo),
			relacion("Hijo/a", hija),
		},
		nil, nil, nil,
	)

	if len(grupos) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(grupos))
	}
	hijos := buscarGrupo(t, grupos, "Hijo/a")
	if len(hijos.Familiares) != 2 {
		t.Errorf("expected 2 hijos, got %d", len(hijos.Familiares))
	}
	for _, f := range hijos.Familiares {
		if f.Fuente != models.FuenteDirecta {
			t.Errorf("expected fuente directa, got %s", f.Fuente)
		}
		if f.RelacionID == nil {
			t.Error("explicit entries must carry their relation id")
		}
	}
}

func TestAgruparInvierteEtiquetaInversa(t *testing.T) {
	// The other person recorded "Padre"; viewed from here that is Hijo/a.
	padre := persona("Pedro")

	grupos := Agrupar(nil, []RelacionConPersona{relacion("Padre", padre)}, nil, nil)

	g := buscarGrupo(t, grupos, "Hijo/a")
	if g.Familiares[0].Fuente != models.FuenteInversa {
		t.Errorf("expected fuente inversa, got %s", g.Familiares[0].Fuente)
	}
}

func TestAgruparEtiquetaDesconocidaUsaGenerica(t *testing.T) {
	otro := persona("Luis")

	grupos := Agrupar(nil, []RelacionConPersona{relacion("Compadre", otro)}, nil, nil)

	buscarGrupo(t, grupos, EtiquetaGenerica)
}

func TestAgruparExplicitaSuprimeCoMembresia(t *testing.T) {
	esposa := persona("María")
	primo := persona("Carlos")

	grupos := Agrupar(
		[]RelacionConPersona{relacion("Esposo/a", esposa)},
		nil,
		[]models.Persona{esposa, primo}, // esposa also shares the family
		nil,
	)

	total := 0
	for _, g := range grupos {
		total += len(g.Familiares)
	}
	if total != 2 {
		t.Fatalf("expected exactly one entry per pair, got %d entries", total)
	}

	g := buscarGrupo(t, grupos, "Esposo/a")
	if len(g.Familiares) != 1 || g.Familiares[0].Fuente != models.FuenteDirecta {
		t.Error("explicit relation label must win over the inferred familia entry")
	}

	generico := buscarGrupo(t, grupos, EtiquetaGenerica)
	if len(generico.Familiares) != 1 || generico.Familiares[0].Persona.ID != primo.ID {
		t.Error("only the unrelated co-member should stay under the generic label")
	}
	if generico.Familiares[0].Fuente != models.FuenteFamilia {
		t.Errorf("co-member entries carry fuente familia, got %s", generico.Familiares[0].Fuente)
	}
	if generico.Familiares[0].RelacionID != nil {
		t.Error("inferred entries have no relation id to delete")
	}
}

func TestAgruparDirectaGanaSobreInversa(t *testing.T) {
	esposa := persona("María")

	grupos := Agrupar(
		[]RelacionConPersona{relacion("Esposo/a", esposa)},
		[]RelacionConPersona{relacion("Esposo/a", esposa)},
		nil, nil,
	)

	if len(grupos) != 1 || len(grupos[0].Familiares) != 1 {
		t.Fatalf("pair recorded in both directions must appear once, got %+v", grupos)
	}
	if grupos[0].Familiares[0].Fuente != models.FuenteDirecta {
		t.Errorf("direct record wins, got fuente %s", grupos[0].Familiares[0].Fuente)
	}
}

func TestAgruparOrdenEstable(t *testing.T) {
	a := persona("A")
	b := persona("B")

	entradas := []RelacionConPersona{
		relacion("Hermano/a", a),
		relacion("Esposo/a", b),
	}

	grupos := Agrupar(entradas, nil, nil, nil)

	if grupos[0].Tipo != "Hermano/a" || grupos[1].Tipo != "Esposo/a" {
		t.Errorf("groups must keep first-appearance order, got %q then %q", grupos[0].Tipo, grupos[1].Tipo)
	}
}
