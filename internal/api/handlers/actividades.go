package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/auth"
	"github.com/your-org/comunidad/internal/models"
	"github.com/your-org/comunidad/internal/storage"
	"github.com/your-org/comunidad/pkg/dto"
)

type ActividadHandler struct {
	db *storage.PostgresStore
}

func NewActividadHandler(db *storage.PostgresStore) *ActividadHandler {
	return &ActividadHandler{db: db}
}

func horarioResponse(h *models.Horario) dto.HorarioResponse {
	return dto.HorarioResponse{
		ID:         h.ID,
		Fecha:      h.Fecha.Format("2006-01-02"),
		HoraInicio: h.HoraInicio,
		HoraFin:    h.HoraFin,
		Notas:      h.Notas,
		CreatedAt:  h.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func actividadResponse(a *models.Actividad) dto.ActividadResponse {
	resp := dto.ActividadResponse{
		ID:              a.ID,
		TipoActividadID: a.TipoActividadID,
		Nombre:          a.Nombre,
		Fecha:           a.Fecha.Format("2006-01-02"),
		HoraInicio:      a.HoraInicio,
		HoraFin:         a.HoraFin,
		Estado:          a.Estado,
		CreatedAt:       a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:       a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	for i := range a.Horarios {
		resp.Horarios = append(resp.Horarios, horarioResponse(&a.Horarios[i]))
	}
	return resp
}

// --- Tipos de actividad ---

func (h *ActividadHandler) CreateTipo(c *gin.Context) {
	var req dto.CrearTipoActividadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tipo := &models.TipoActividad{
		IglesiaID: auth.IglesiaID(c),
		Nombre:    req.Nombre,
		Tipo:      models.TipoActividadClase(req.Tipo),
	}
	if err := h.db.CrearTipoActividad(c.Request.Context(), tipo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.TipoActividadResponse{
		ID:        tipo.ID,
		Nombre:    tipo.Nombre,
		Tipo:      string(tipo.Tipo),
		CreatedAt: tipo.CreatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

func (h *ActividadHandler) ListTipos(c *gin.Context) {
	tipos, err := h.db.ListarTiposActividad(c.Request.Context(), auth.IglesiaID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.TipoActividadResponse, 0, len(tipos))
	for _, t := range tipos {
		resp = append(resp, dto.TipoActividadResponse{
			ID:        t.ID,
			Nombre:    t.Nombre,
			Tipo:      string(t.Tipo),
			CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"tipos": resp, "total": len(resp)})
}

// --- Actividades ---

func (h *ActividadHandler) Create(c *gin.Context) {
	var req dto.CrearActividadRequest
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

	tipo, err := h.db.ObtenerTipoActividad(c.Request.Context(), iglesiaID, req.TipoActividadID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tipo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tipo de actividad no encontrado"})
		return
	}

	actividad := &models.Actividad{
		IglesiaID:       iglesiaID,
		TipoActividadID: req.TipoActividadID,
		Nombre:          req.Nombre,
		Fecha:           fecha,
		HoraInicio:      req.HoraInicio,
		HoraFin:         req.HoraFin,
		Estado:          req.Estado,
	}
	if err := h.db.CrearActividad(c.Request.Context(), actividad); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, actividadResponse(actividad))
}

func (h *ActividadHandler) List(c *gin.Context) {
	filtro := storage.FiltroActividades{}
	if tipoStr := c.Query("tipo_actividad_id"); tipoStr != "" {
		id, err := uuid.Parse(tipoStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tipo_actividad_id"})
			return
		}
		filtro.TipoActividadID = &id
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

	actividades, err := h.db.ListarActividades(c.Request.Context(), auth.IglesiaID(c), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.ActividadResponse, 0, len(actividades))
	for i := range actividades {
		resp = append(resp, actividadResponse(&actividades[i]))
	}

	c.JSON(http.StatusOK, gin.H{"actividades": resp, "total": len(resp)})
}

func (h *ActividadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid actividad id"})
		return
	}

	actividad, err := h.db.ObtenerActividad(c.Request.Context(), auth.IglesiaID(c), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if actividad == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "actividad no encontrada"})
		return
	}

	c.JSON(http.StatusOK, actividadResponse(actividad))
}

func (h *ActividadHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid actividad id"})
		return
	}

	var req dto.ActualizarActividadRequest
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

	actividad, err := h.db.ObtenerActividad(c.Request.Context(), iglesiaID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if actividad == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "actividad no encontrada"})
		return
	}

	actividad.Nombre = req.Nombre
	actividad.Fecha = fecha
	actividad.HoraInicio = req.HoraInicio
	actividad.HoraFin = req.HoraFin
	actividad.Estado = req.Estado

	if err := h.db.ActualizarActividad(c.Request.Context(), actividad); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, actividadResponse(actividad))
}

// --- Horarios ---

func (h *ActividadHandler) CreateHorario(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid actividad id"})
		return
	}

	var req dto.CrearHorarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fecha, expected YYYY-MM-DD"})
		return
	}

	actividad, err := h.db.ObtenerActividad(c.Request.Context(), auth.IglesiaID(c), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if actividad == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "actividad no encontrada"})
		return
	}

	horario := &models.Horario{
		ActividadID: id,
		Fecha:       fecha,
		HoraInicio:  req.HoraInicio,
		HoraFin:     req.HoraFin,
		Notas:       req.Notas,
	}
	if err := h.db.CrearHorario(c.Request.Context(), horario); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, horarioResponse(horario))
}

func (h *ActividadHandler) ListHorarios(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid actividad id"})
		return
	}

	actividad, err := h.db.ObtenerActividad(c.Request.Context(), auth.IglesiaID(c), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if actividad == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "actividad no encontrada"})
		return
	}

	resp := make([]dto.HorarioResponse, 0, len(actividad.Horarios))
	for i := range actividad.Horarios {
		resp = append(resp, horarioResponse(&actividad.Horarios[i]))
	}

	c.JSON(http.StatusOK, gin.H{"horarios": resp, "total": len(resp)})
}

func (h *ActividadHandler) DeleteHorario(c *gin.Context) {
	horarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid horario id"})
		return
	}

	if err := h.db.EliminarHorario(c.Request.Context(), auth.IglesiaID(c), horarioID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
