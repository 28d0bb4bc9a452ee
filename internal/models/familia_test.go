package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestOtraFamilia(t *testing.T) {
	origen := uuid.New()
	relacionada := uuid.New()
	v := VinculoFamiliar{FamiliaOrigenID: origen, FamiliaRelacionadaID: relacionada}

	if got := v.OtraFamilia(origen); got != relacionada {
		t.Errorf("OtraFamilia(origen) = %v, want %v", got, relacionada)
	}
	if got := v.OtraFamilia(relacionada); got != origen {
		t.Errorf("OtraFamilia(relacionada) = %v, want %v", got, origen)
	}
}
