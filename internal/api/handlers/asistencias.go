package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/agenda"
	"github.com/your-org/comunidad/internal/auth"
	"github.com/your-org/comunidad/internal/models"
	"github.com/your-org/comunidad/internal/observability"
	"github.com/your-org/comunidad/internal/queue"
	"github.com/your-org/comunidad/internal/storage"
	"github.com/your-org/comunidad/pkg/dto"
)

type AsistenciaHandler struct {
	db       *storage.PostgresStore
	producer *queue.Producer
	// ahora is swappable so the selector endpoint can be tested at a
	// fixed instant.
	ahora func() time.Time
}

func NewAsistenciaHandler(db *storage.PostgresStore, producer *queue.Producer) *AsistenciaHandler {
	return &AsistenciaHandler{db: db, producer: producer, ahora: time.Now}
}

func asistenciaResponse(a *models.Asistencia) dto.AsistenciaResponse {
	return dto.AsistenciaResponse{
		ID:            a.ID,
		PersonaID:     a.PersonaID,
		ActividadID:   a.ActividadID,
		HorarioID:     a.HorarioID,
		InvitadaPorID: a.InvitadaPorID,
		Fecha:         a.Fecha.Format("2006-01-02"),
		Observaciones: a.Observaciones,
		CreatedAt:     a.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (h *AsistenciaHandler) Create(c *gin.Context) {
	var req dto.CrearAsistenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fecha, expected YYYY-MM-DD"})
		return
	}

	iglesiaID := auth.IglesiaID(c)

	persona, err := h.db.ObtenerPersona(c.Request.Context(), iglesiaID, req.PersonaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if persona == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona no encontrada"})
		return
	}

	asistencia := &models.Asistencia{
		IglesiaID:     iglesiaID,
		PersonaID:     req.PersonaID,
		ActividadID:   req.ActividadID,
		HorarioID:     req.HorarioID,
		InvitadaPorID: req.InvitadaPorID,
		Fecha:         fecha,
		Observaciones: req.Observaciones,
	}

	var actividad *models.Actividad
	if req.ActividadID != nil {
		actividad, err = h.db.ObtenerActividad(c.Request.Context(), iglesiaID, *req.ActividadID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if actividad == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "actividad no encontrada"})
			return
		}
	}
	if err := asistencia.ValidarFecha(actividad); err != nil {
		if errors.Is(err, models.ErrFechaNoCoincide) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.CrearAsistencia(c.Request.Context(), asistencia); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	observability.AsistenciasRegistradas.WithLabelValues(iglesiaID.String()).Inc()

	// Publish is best-effort: the record already committed.
	evento := models.EventoAsistencia{
		AsistenciaID:  asistencia.ID,
		IglesiaID:     iglesiaID,
		PersonaID:     persona.ID,
		PersonaNombre: persona.NombreCompleto(),
		Rol:           persona.Rol,
		ActividadID:   asistencia.ActividadID,
		Fecha:         asistencia.Fecha,
	}
	if err := h.producer.PublishAsistencia(c.Request.Context(), evento); err != nil {
		publicarFallido(c, queue.SubjectAsistencia, err)
	}

	c.JSON(http.StatusCreated, asistenciaResponse(asistencia))
}

func (h *AsistenciaHandler) List(c *gin.Context) {
	filtro := storage.FiltroAsistencias{}
	if pStr := c.Query("persona_id"); pStr != "" {
		id, err := uuid.Parse(pStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona_id"})
			return
		}
		filtro.PersonaID = &id
	}
	if aStr := c.Query("actividad_id"); aStr != "" {
		id, err := uuid.Parse(aStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid actividad_id"})
			return
		}
		filtro.ActividadID = &id
	}
	if desdeStr := c.Query("desde"); desdeStr != "" {
		t, err := time.Parse("2006-01-02", desdeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid desde, expected YYYY-MM-DD"})
			return
		}
		filtro.Desde = &t
	}
	if hastaStr := c.Query("hasta"); hastaStr != "" {
		t, err := time.Parse("2006-01-02", hastaStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hasta, expected YYYY-MM-DD"})
			return
		}
		filtro.Hasta = &t
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	asistencias, total, err := h.db.ListarAsistencias(c.Request.Context(), auth.IglesiaID(c), filtro, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := dto.AsistenciaListResponse{
		Asistencias: make([]dto.AsistenciaResponse, 0, len(asistencias)),
		Total:       total,
	}
	for i := range asistencias {
		resp.Asistencias = append(resp.Asistencias, asistenciaResponse(&asistencias[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Seleccion suggests the activity and time-slot to pre-fill the
// attendance form with, scoped to one tipo de actividad. An empty body
// means no sensible default exists.
func (h *AsistenciaHandler) Seleccion(c *gin.Context) {
	tipoStr := c.Query("tipo_actividad_id")
	if tipoStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tipo_actividad_id required"})
		return
	}
	tipoID, err := uuid.Parse(tipoStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tipo_actividad_id"})
		return
	}

	iglesiaID := auth.IglesiaID(c)
	ahora := h.ahora()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	desde := hoy

	actividades, err := h.db.ListarActividades(c.Request.Context(), iglesiaID, storage.FiltroActividades{
		TipoActividadID: &tipoID,
		Desde:           &desde,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for i := range actividades {
		horarios, err := h.db.HorariosDeActividad(c.Request.Context(), actividades[i].ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		actividades[i].Horarios = horarios
	}

	seleccion := agenda.Seleccionar(actividades, ahora)

	resp := dto.SeleccionResponse{}
	if seleccion.Actividad != nil {
		a := actividadResponse(seleccion.Actividad)
		resp.Actividad = &a
	}
	if seleccion.Horario != nil {
		hr := horarioResponse(seleccion.Horario)
		resp.Horario = &hr
	}

	c.JSON(http.StatusOK, resp)
}

// Resumen returns the per-day attendance rollup maintained by the
// resumen worker.
func (h *AsistenciaHandler) Resumen(c *gin.Context) {
	var desde, hasta *time.Time
	if desdeStr := c.Query("desde"); desdeStr != "" {
		t, err := time.Parse("2006-01-02", desdeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid desde, expected YYYY-MM-DD"})
			return
		}
		desde = &t
	}
	if hastaStr := c.Query("hasta"); hastaStr != "" {
		t, err := time.Parse("2006-01-02", hastaStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hasta, expected YYYY-MM-DD"})
			return
		}
		hasta = &t
	}

	resumen, err := h.db.ListarResumen(c.Request.Context(), auth.IglesiaID(c), desde, hasta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.ResumenResponse, 0, len(resumen))
	for _, r := range resumen {
		resp = append(resp, dto.ResumenResponse{
			Fecha:   r.Fecha.Format("2006-01-02"),
			Total:   r.Total,
			Visitas: r.Visitas,
		})
	}

	c.JSON(http.StatusOK, gin.H{"resumen": resp, "total": len(resp)})
}
