// Package agenda picks the activity and time-slot a user most likely
// wants to record attendance against, so the form opens pre-filled.
package agenda

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/your-org/comunidad/internal/models"
)

// duracionPredeterminada is assumed when an activity has a start time
// but no end time.
const duracionPredeterminada = 120

// Seleccion is the selector output. Both fields nil means no sensible
// default exists and the form falls back to manual selection.
type Seleccion struct {
	Actividad *models.Actividad
	Horario   *models.Horario
}

func (s Seleccion) Vacia() bool {
	return s.Actividad == nil
}

// Minutos parses an "HH:MM" string into minutes since midnight.
// Malformed or missing components count as 0; the selector must never
// fail on user-entered time strings.
func Minutos(hora string) int {
	partes := strings.SplitN(hora, ":", 2)
	h := 0
	m := 0
	if len(partes) > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(partes[0])); err == nil {
			h = n
		}
	}
	if len(partes) > 1 {
		if n, err := strconv.Atoi(strings.TrimSpace(partes[1])); err == nil {
			m = n
		}
	}
	return h*60 + m
}

// Seleccionar implements the attendance pre-fill heuristic over a list
// of activities already filtered to one tipo de actividad:
//
//  1. An activity happening today whose slot contains the current time
//     wins, regardless of where it sits in the list.
//  2. Otherwise the first still-upcoming slot of a today activity wins,
//     in list order.
//  3. Otherwise the chronologically nearest future activity wins, with
//     its earliest slot.
//  4. Otherwise the selection is empty.
//
// The result is a pure function of (actividades, ahora); callers may
// invoke it repeatedly without side effects. It is advisory only and
// always user-overridable.
func Seleccionar(actividades []models.Actividad, ahora time.Time) Seleccion {
	ahoraMin := ahora.Hour()*60 + ahora.Minute()

	// First pass: an in-progress slot anywhere in today's activities
	// beats every upcoming one.
	for i := range actividades {
		act := &actividades[i]
		if !mismoDia(act.Fecha, ahora) {
			continue
		}

		if len(act.Horarios) > 0 {
			horarios := ordenarHorarios(act.Horarios)
			for j := range horarios {
				h := &horarios[j]
				if ahoraMin >= Minutos(h.HoraInicio) && ahoraMin <= Minutos(h.HoraFin) {
					return Seleccion{Actividad: act, Horario: h}
				}
			}
			continue
		}

		if act.HoraInicio != "" {
			inicio := Minutos(act.HoraInicio)
			fin := inicio + duracionPredeterminada
			if act.HoraFin != "" {
				fin = Minutos(act.HoraFin)
			}
			if ahoraMin >= inicio && ahoraMin <= fin {
				return Seleccion{Actividad: act}
			}
		}
	}

	// Second pass: nothing in progress; the first still-upcoming slot
	// of a today activity wins, keeping the list's given order.
	for i := range actividades {
		act := &actividades[i]
		if !mismoDia(act.Fecha, ahora) {
			continue
		}

		if len(act.Horarios) > 0 {
			horarios := ordenarHorarios(act.Horarios)
			for j := range horarios {
				h := &horarios[j]
				if ahoraMin < Minutos(h.HoraInicio) {
					return Seleccion{Actividad: act, Horario: h}
				}
			}
			continue
		}

		if act.HoraInicio != "" && ahoraMin < Minutos(act.HoraInicio) {
			return Seleccion{Actividad: act}
		}
	}

	// Nothing today: nearest strictly-future activity, earliest slot.
	var futuras []models.Actividad
	for _, act := range actividades {
		if diaDespues(act.Fecha, ahora) {
			futuras = append(futuras, act)
		}
	}
	if len(futuras) == 0 {
		return Seleccion{}
	}
	sort.SliceStable(futuras, func(i, j int) bool {
		return futuras[i].Fecha.Before(futuras[j].Fecha)
	})

	elegida := futuras[0]
	sel := Seleccion{Actividad: &elegida}
	if len(elegida.Horarios) > 0 {
		horarios := ordenarHorarios(elegida.Horarios)
		sel.Horario = &horarios[0]
	}
	return sel
}

// ordenarHorarios returns a stably sorted copy, ascending by start
// minute. The original slice keeps its order.
func ordenarHorarios(horarios []models.Horario) []models.Horario {
	ordenados := make([]models.Horario, len(horarios))
	copy(ordenados, horarios)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return Minutos(ordenados[i].HoraInicio) < Minutos(ordenados[j].HoraInicio)
	})
	return ordenados
}

func mismoDia(fecha, ahora time.Time) bool {
	fy, fm, fd := fecha.Date()
	ay, am, ad := ahora.Date()
	return fy == ay && fm == am && fd == ad
}

// diaDespues reports whether fecha falls on a later calendar day than
// ahora.
func diaDespues(fecha, ahora time.Time) bool {
	fy, fm, fd := fecha.Date()
	ay, am, ad := ahora.Date()
	if fy != ay {
		return fy > ay
	}
	if fm != am {
		return fm > am
	}
	return fd > ad
}
