package models

import (
	"errors"
	"testing"
	"time"
)

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidarFecha(t *testing.T) {
	tests := []struct {
		name       string
		asistencia string
		actividad  *Actividad
		wantErr    error
	}{
		{
			name:       "sin actividad",
			asistencia: "2026-03-01",
			actividad:  nil,
			wantErr:    nil,
		},
		{
			name:       "fechas iguales",
			asistencia: "2026-03-01",
			actividad:  &Actividad{Fecha: fecha("2026-03-01")},
			wantErr:    nil,
		},
		{
			name:       "fechas distintas",
			asistencia: "2026-03-01",
			actividad:  &Actividad{Fecha: fecha("2026-03-02")},
			wantErr:    ErrFechaNoCoincide,
		},
		{
			name:       "misma fecha distinta hora",
			asistencia: "2026-03-01",
			actividad:  &Actividad{Fecha: fecha("2026-03-01").Add(14 * time.Hour)},
			wantErr:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Asistencia{Fecha: fecha(tt.asistencia)}
			err := a.ValidarFecha(tt.actividad)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidarFecha() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
