package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/auth"
	"github.com/your-org/comunidad/internal/models"
	"github.com/your-org/comunidad/internal/storage"
	"github.com/your-org/comunidad/pkg/dto"
)

type MinisterioHandler struct {
	db *storage.PostgresStore
}

func NewMinisterioHandler(db *storage.PostgresStore) *MinisterioHandler {
	return &MinisterioHandler{db: db}
}

func ministerioResponse(m *models.Ministerio) dto.MinisterioResponse {
	return dto.MinisterioResponse{
		ID:          m.ID,
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		Estado:      m.Estado,
		CreatedAt:   m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   m.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (h *MinisterioHandler) Create(c *gin.Context) {
	var req dto.CrearMinisterioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ministerio := &models.Ministerio{
		IglesiaID:   auth.IglesiaID(c),
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Estado:      req.Estado,
	}
	if err := h.db.CrearMinisterio(c.Request.Context(), ministerio); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ministerioResponse(ministerio))
}

func (h *MinisterioHandler) List(c *gin.Context) {
	ministerios, err := h.db.ListarMinisterios(c.Request.Context(), auth.IglesiaID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.MinisterioResponse, 0, len(ministerios))
	for i := range ministerios {
		resp = append(resp, ministerioResponse(&ministerios[i]))
	}

	c.JSON(http.StatusOK, gin.H{"ministerios": resp, "total": len(resp)})
}

func (h *MinisterioHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ministerio id"})
		return
	}

	var req dto.CrearMinisterioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ministerio := &models.Ministerio{
		ID:          id,
		IglesiaID:   auth.IglesiaID(c),
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Estado:      req.Estado,
	}
	if err := h.db.ActualizarMinisterio(c.Request.Context(), ministerio); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ministerioResponse(ministerio))
}

// Asignar adds a person to the ministry. Re-assigning is a no-op.
func (h *MinisterioHandler) Asignar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ministerio id"})
		return
	}

	var req dto.AsignarMinisterioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	if err := h.db.AsignarPersonaMinisterio(c.Request.Context(), id, req.PersonaID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "assigned"})
}

func (h *MinisterioHandler) Quitar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ministerio id"})
		return
	}
	personaID, err := uuid.Parse(c.Param("personaId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona id"})
		return
	}

	if err := h.db.QuitarPersonaMinisterio(c.Request.Context(), id, personaID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
