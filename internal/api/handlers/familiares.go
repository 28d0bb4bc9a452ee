package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/auth"
	"github.com/your-org/comunidad/internal/models"
	"github.com/your-org/comunidad/internal/parentesco"
	"github.com/your-org/comunidad/internal/storage"
	"github.com/your-org/comunidad/pkg/dto"
)

// FamiliarHandler serves the aggregated relative view and the explicit
// relation records beneath it.
type FamiliarHandler struct {
	db *storage.PostgresStore
}

func NewFamiliarHandler(db *storage.PostgresStore) *FamiliarHandler {
	return &FamiliarHandler{db: db}
}

// Listar returns every relative of a person, merged from explicit
// relations (both directions) and shared family membership.
func (h *FamiliarHandler) Listar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona id"})
		return
	}

	iglesiaID := auth.IglesiaID(c)

	persona, err := h.db.ObtenerPersona(c.Request.Context(), iglesiaID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if persona == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona no encontrada"})
		return
	}

	directas, err := h.db.RelacionesDirectas(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	inversas, err := h.db.RelacionesInversas(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Co-membership is the weakest source; a failure here degrades the
	// view instead of failing the request.
	coMiembros, err := h.db.CoMiembrosFamilia(c.Request.Context(), id)
	if err != nil {
		slog.Warn("list co-miembros", "persona_id", id, "error", err)
		coMiembros = nil
	}

	grupos := parentesco.Agrupar(directas, inversas, coMiembros, nil)

	resp := dto.FamiliaresResponse{Grupos: make([]dto.GrupoFamiliares, 0, len(grupos))}
	for _, g := range grupos {
		grupo := dto.GrupoFamiliares{Tipo: g.Tipo}
		for _, f := range g.Familiares {
			p := f.Persona
			grupo.Familiares = append(grupo.Familiares, dto.FamiliarEntry{
				Persona:    personaResponse(&p),
				Fuente:     string(f.Fuente),
				RelacionID: f.RelacionID,
			})
			resp.Total++
		}
		resp.Grupos = append(resp.Grupos, grupo)
	}

	c.JSON(http.StatusOK, resp)
}

// CrearRelacion records an explicit relation and attaches the advisory
// family suggestion to the response. The suggestion never blocks.
func (h *FamiliarHandler) CrearRelacion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona id"})
		return
	}

	var req dto.CrearRelacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FamiliarID == id {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "una persona no puede relacionarse consigo misma"})
		return
	}

	iglesiaID := auth.IglesiaID(c)

	persona, err := h.db.ObtenerPersona(c.Request.Context(), iglesiaID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if persona == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona no encontrada"})
		return
	}

	familiar, err := h.db.ObtenerPersona(c.Request.Context(), iglesiaID, req.FamiliarID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if familiar == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "familiar no encontrado"})
		return
	}

	relacion := &models.RelacionFamiliar{
		PersonaID:    id,
		FamiliarID:   req.FamiliarID,
		TipoRelacion: req.TipoRelacion,
	}
	if err := h.db.CrearRelacion(c.Request.Context(), relacion); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sugerencia := parentesco.AnalizarSugerencia(persona, familiar, req.TipoRelacion,
		func(familiaID uuid.UUID) (*models.Familia, error) {
			return h.db.ObtenerFamilia(c.Request.Context(), iglesiaID, familiaID)
		})

	c.JSON(http.StatusCreated, dto.RelacionCreadaResponse{
		ID:         relacion.ID,
		PersonaID:  relacion.PersonaID,
		FamiliarID: relacion.FamiliarID,
		Tipo:       relacion.TipoRelacion,
		Sugerencia: sugerenciaResponse(sugerencia),
		CreatedAt:  relacion.CreatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

// Sugerencia previews the family suggestion for a pair without
// creating a relation, so the UI can show it up front.
func (h *FamiliarHandler) Sugerencia(c *gin.Context) {
	personaA, err := uuid.Parse(c.Query("persona_a"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona_a"})
		return
	}
	personaB, err := uuid.Parse(c.Query("persona_b"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona_b"})
		return
	}
	tipo := c.Query("tipo")

	iglesiaID := auth.IglesiaID(c)

	a, err := h.db.ObtenerPersona(c.Request.Context(), iglesiaID, personaA)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona no encontrada"})
		return
	}
	b, err := h.db.ObtenerPersona(c.Request.Context(), iglesiaID, personaB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona no encontrada"})
		return
	}

	sugerencia := parentesco.AnalizarSugerencia(a, b, tipo,
		func(familiaID uuid.UUID) (*models.Familia, error) {
			return h.db.ObtenerFamilia(c.Request.Context(), iglesiaID, familiaID)
		})

	c.JSON(http.StatusOK, sugerenciaResponse(sugerencia))
}

func (h *FamiliarHandler) EliminarRelacion(c *gin.Context) {
	relacionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid relacion id"})
		return
	}

	if err := h.db.EliminarRelacion(c.Request.Context(), auth.IglesiaID(c), relacionID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func sugerenciaResponse(s parentesco.Sugerencia) dto.SugerenciaResponse {
	resp := dto.SugerenciaResponse{
		Tipo:      s.Tipo,
		PersonaID: s.Persona,
		Mensaje:   s.Mensaje,
	}
	if s.Familia != nil {
		f := familiaResponse(s.Familia)
		resp.Familia = &f
	}
	return resp
}
