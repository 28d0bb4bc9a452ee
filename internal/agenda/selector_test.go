package agenda

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/models"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reloj(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestMinutos(t *testing.T) {
	tests := []struct {
		name string
		hora string
		want int
	}{
		{"normal", "09:30", 570},
		{"medianoche", "00:00", 0},
		{"tarde", "18:00", 1080},
		{"sin minutos", "9", 540},
		{"vacio", "", 0},
		{"basura", "abc", 0},
		{"minutos basura", "10:xx", 600},
		{"horas basura", "xx:45", 45},
		{"espacios", " 08 : 15 ", 495},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Minutos(tt.hora); got != tt.want {
				t.Errorf("Minutos(%q) = %d, want %d", tt.hora, got, tt.want)
			}
		})
	}
}

func TestSeleccionarHorarioEnCurso(t *testing.T) {
	id := uuid.New()
	actividades := []models.Actividad{{
		ID:    id,
		Fecha: fecha(2026, 3, 15),
		Horarios: []models.Horario{
			{HoraInicio: "09:00", HoraFin: "10:30"},
		},
	}}

	sel := Seleccionar(actividades, reloj(2026, 3, 15, 9, 30))

	if sel.Vacia() {
		t.Fatal("expected a selection, got empty")
	}
	if sel.Actividad.ID != id {
		t.Errorf("selected activity %s, want %s", sel.Actividad.ID, id)
	}
	if sel.Horario == nil || sel.Horario.HoraInicio != "09:00" {
		t.Errorf("expected the in-progress slot, got %+v", sel.Horario)
	}
}

func TestSeleccionarEnCursoGanaSinImportarOrden(t *testing.T) {
	hoy := fecha(2026, 3, 15)
	enCurso := models.Actividad{
		ID:    uuid.New(),
		Fecha: hoy,
		Horarios: []models.Horario{
			{HoraInicio: "09:00", HoraFin: "10:30"},
		},
	}
	pasada := models.Actividad{
		ID:    uuid.New(),
		Fecha: hoy,
		Horarios: []models.Horario{
			{HoraInicio: "06:00", HoraFin: "07:00"},
		},
	}

	ahora := reloj(2026, 3, 15, 9, 30)

	for _, lista := range [][]models.Actividad{
		{enCurso, pasada},
		{pasada, enCurso},
	} {
		sel := Seleccionar(lista, ahora)
		if sel.Vacia() || sel.Actividad.ID != enCurso.ID {
			t.Errorf("expected in-progress activity regardless of order, got %+v", sel.Actividad)
		}
	}
}

func TestSeleccionarEnCursoGanaAProximaListadaAntes(t *testing.T) {
	hoy := fecha(2026, 3, 15)
	proxima := models.Actividad{
		ID:    uuid.New(),
		Fecha: hoy,
		Horarios: []models.Horario{
			{HoraInicio: "10:00", HoraFin: "11:00"},
		},
	}
	enCurso := models.Actividad{
		ID:    uuid.New(),
		Fecha: hoy,
		Horarios: []models.Horario{
			{HoraInicio: "09:00", HoraFin: "10:30"},
		},
	}

	ahora := reloj(2026, 3, 15, 9, 30)

	for _, lista := range [][]models.Actividad{
		{proxima, enCurso},
		{enCurso, proxima},
	} {
		sel := Seleccionar(lista, ahora)
		if sel.Vacia() || sel.Actividad.ID != enCurso.ID {
			t.Errorf("in-progress slot must beat an earlier-listed upcoming one, got %+v", sel.Actividad)
		}
		if sel.Horario == nil || sel.Horario.HoraInicio != "09:00" {
			t.Errorf("expected the 09:00 in-progress slot, got %+v", sel.Horario)
		}
	}
}

func TestSeleccionarEnCursoSinHorariosGanaAProximaListadaAntes(t *testing.T) {
	hoy := fecha(2026, 3, 15)
	proxima := models.Actividad{ID: uuid.New(), Fecha: hoy, HoraInicio: "10:00", HoraFin: "11:00"}
	enCurso := models.Actividad{ID: uuid.New(), Fecha: hoy, HoraInicio: "09:00", HoraFin: "10:30"}

	sel := Seleccionar([]models.Actividad{proxima, enCurso}, reloj(2026, 3, 15, 9, 30))

	if sel.Vacia() || sel.Actividad.ID != enCurso.ID {
		t.Errorf("in-progress activity must beat an earlier-listed upcoming one, got %+v", sel.Actividad)
	}
}

func TestSeleccionarProximaDeHoy(t *testing.T) {
	actividades := []models.Actividad{{
		ID:         uuid.New(),
		Fecha:      fecha(2026, 3, 15),
		HoraInicio: "18:00",
		HoraFin:    "20:00",
	}}

	sel := Seleccionar(actividades, reloj(2026, 3, 15, 9, 0))

	if sel.Vacia() {
		t.Fatal("expected the upcoming activity, got empty")
	}
	if sel.Horario != nil {
		t.Errorf("activity without horarios should not select a slot, got %+v", sel.Horario)
	}
}

func TestSeleccionarHoraFinAusente(t *testing.T) {
	// Without hora_fin the window is start + 120 minutes.
	actividades := []models.Actividad{{
		ID:         uuid.New(),
		Fecha:      fecha(2026, 3, 15),
		HoraInicio: "09:00",
	}}

	if sel := Seleccionar(actividades, reloj(2026, 3, 15, 10, 59)); sel.Vacia() {
		t.Error("10:59 is inside the default 120-minute window")
	}
	if sel := Seleccionar(actividades, reloj(2026, 3, 15, 11, 1)); !sel.Vacia() {
		t.Error("11:01 is past the default window and nothing is upcoming")
	}
}

func TestSeleccionarPrimerHorarioProximo(t *testing.T) {
	// Slots given out of order; earliest upcoming one wins.
	actividades := []models.Actividad{{
		ID:    uuid.New(),
		Fecha: fecha(2026, 3, 15),
		Horarios: []models.Horario{
			{HoraInicio: "18:00", HoraFin: "19:00"},
			{HoraInicio: "11:00", HoraFin: "12:00"},
		},
	}}

	sel := Seleccionar(actividades, reloj(2026, 3, 15, 9, 0))

	if sel.Vacia() || sel.Horario == nil {
		t.Fatal("expected an upcoming slot")
	}
	if sel.Horario.HoraInicio != "11:00" {
		t.Errorf("expected 11:00 slot, got %s", sel.Horario.HoraInicio)
	}
}

func TestSeleccionarFuturaMasCercana(t *testing.T) {
	ahora := reloj(2026, 3, 15, 10, 0)
	lejana := models.Actividad{ID: uuid.New(), Fecha: fecha(2026, 4, 1)}
	cercana := models.Actividad{
		ID:    uuid.New(),
		Fecha: fecha(2026, 3, 20),
		Horarios: []models.Horario{
			{HoraInicio: "15:00", HoraFin: "16:00"},
			{HoraInicio: "08:00", HoraFin: "09:00"},
		},
	}

	sel := Seleccionar([]models.Actividad{lejana, cercana}, ahora)

	if sel.Vacia() || sel.Actividad.ID != cercana.ID {
		t.Fatalf("expected nearest future activity, got %+v", sel.Actividad)
	}
	if sel.Horario == nil || sel.Horario.HoraInicio != "08:00" {
		t.Errorf("expected earliest slot of future activity, got %+v", sel.Horario)
	}
}

func TestSeleccionarPasadasNoCuentan(t *testing.T) {
	actividades := []models.Actividad{
		{ID: uuid.New(), Fecha: fecha(2026, 3, 1)},
		{ID: uuid.New(), Fecha: fecha(2026, 2, 10), HoraInicio: "09:00"},
	}

	sel := Seleccionar(actividades, reloj(2026, 3, 15, 10, 0))

	if !sel.Vacia() {
		t.Errorf("expected empty selection, got %+v", sel.Actividad)
	}
}

func TestSeleccionarVacia(t *testing.T) {
	if sel := Seleccionar(nil, reloj(2026, 3, 15, 10, 0)); !sel.Vacia() {
		t.Error("expected empty selection for empty input")
	}
}

func TestSeleccionarEsIdempotente(t *testing.T) {
	actividades := []models.Actividad{{
		ID:    uuid.New(),
		Fecha: fecha(2026, 3, 15),
		Horarios: []models.Horario{
			{ID: uuid.New(), HoraInicio: "09:00", HoraFin: "10:30"},
			{ID: uuid.New(), HoraInicio: "09:00", HoraFin: "11:00"},
		},
	}}
	ahora := reloj(2026, 3, 15, 9, 15)

	primera := Seleccionar(actividades, ahora)
	segunda := Seleccionar(actividades, ahora)

	if primera.Horario.ID != segunda.Horario.ID {
		t.Error("same inputs must yield the same slot")
	}
	// Identical start times keep their original relative order.
	if primera.Horario.ID != actividades[0].Horarios[0].ID {
		t.Error("tie on hora_inicio must keep the first-listed slot")
	}
}

func TestSeleccionarHorarioIlegible(t *testing.T) {
	// Garbage times sort first (minute 0) and never panic.
	actividades := []models.Actividad{{
		ID:    uuid.New(),
		Fecha: fecha(2026, 3, 15),
		Horarios: []models.Horario{
			{HoraInicio: "10:00", HoraFin: "11:00"},
			{HoraInicio: "???", HoraFin: ""},
		},
	}}

	sel := Seleccionar(actividades, reloj(2026, 3, 15, 0, 0))

	if sel.Vacia() || sel.Horario == nil {
		t.Fatal("expected a selection")
	}
	if sel.Horario.HoraInicio != "???" {
		t.Errorf("unparseable slot sorts to minute 0 and matches midnight, got %s", sel.Horario.HoraInicio)
	}
}

func TestSeleccionarFechaCivilConZonaLocal(t *testing.T) {
	// Activity dates are date-only values at UTC midnight; "today" is the
	// caller's civil date. An evening clock in a western zone must still
	// match the same calendar day.
	lima := time.FixedZone("-05", -5*3600)
	actividades := []models.Actividad{{
		ID:         uuid.New(),
		Fecha:      fecha(2026, 3, 1),
		HoraInicio: "19:00",
		HoraFin:    "21:00",
	}}

	ahora := time.Date(2026, 3, 1, 19, 30, 0, 0, lima)

	sel := Seleccionar(actividades, ahora)
	if sel.Vacia() {
		t.Fatal("19:30 local on the activity's date must match the in-progress window")
	}
}
