package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/auth"
	"github.com/your-org/comunidad/internal/models"
	"github.com/your-org/comunidad/internal/storage"
	"github.com/your-org/comunidad/pkg/dto"
)

type FamiliaHandler struct {
	db *storage.PostgresStore
}

func NewFamiliaHandler(db *storage.PostgresStore) *FamiliaHandler {
	return &FamiliaHandler{db: db}
}

func familiaResponse(f *models.Familia) dto.FamiliaResponse {
	return dto.FamiliaResponse{
		ID:            f.ID,
		Apellido:      f.Apellido,
		Nombre:        f.Nombre,
		Estado:        f.Estado,
		JefeFamiliaID: f.JefeFamiliaID,
		CreatedAt:     f.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:     f.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (h *FamiliaHandler) Create(c *gin.Context) {
	var req dto.CrearFamiliaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	familia := &models.Familia{
		IglesiaID:     auth.IglesiaID(c),
		Apellido:      req.Apellido,
		Nombre:        req.Nombre,
		Estado:        req.Estado,
		JefeFamiliaID: req.JefeFamiliaID,
	}

	if err := h.db.CrearFamilia(c.Request.Context(), familia); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, familiaResponse(familia))
}

func (h *FamiliaHandler) List(c *gin.Context) {
	familias, err := h.db.ListarFamilias(c.Request.Context(), auth.IglesiaID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.FamiliaResponse, 0, len(familias))
	for i := range familias {
		resp = append(resp, familiaResponse(&familias[i]))
	}

	c.JSON(http.StatusOK, gin.H{"familias": resp, "total": len(resp)})
}

// Get returns the family with its members resolved. Membership lives on
// personas.familia_id, not on the family record.
func (h *FamiliaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid familia id"})
		return
	}

	familia, err := h.db.ObtenerFamilia(c.Request.Context(), auth.IglesiaID(c), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if familia == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "familia no encontrada"})
		return
	}

	miembros, err := h.db.MiembrosFamilia(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := familiaResponse(familia)
	resp.Miembros = make([]dto.PersonaResponse, 0, len(miembros))
	for i := range miembros {
		resp.Miembros = append(resp.Miembros, personaResponse(&miembros[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *FamiliaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid familia id"})
		return
	}

	var req dto.CrearFamiliaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	iglesiaID := auth.IglesiaID(c)

	familia, err := h.db.ObtenerFamilia(c.Request.Context(), iglesiaID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if familia == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "familia no encontrada"})
		return
	}

	familia.Apellido = req.Apellido
	familia.Nombre = req.Nombre
	familia.Estado = req.Estado
	familia.JefeFamiliaID = req.JefeFamiliaID

	if err := h.db.ActualizarFamilia(c.Request.Context(), familia); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, familiaResponse(familia))
}

// CrearVinculo links two families. The stored direction only reflects
// who created the link.
func (h *FamiliaHandler) CrearVinculo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid familia id"})
		return
	}

	var req dto.CrearVinculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	iglesiaID := auth.IglesiaID(c)

	origen, err := h.db.ObtenerFamilia(c.Request.Context(), iglesiaID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if origen == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "familia no encontrada"})
		return
	}

	relacionada, err := h.db.ObtenerFamilia(c.Request.Context(), iglesiaID, req.FamiliaRelacionadaID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if relacionada == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "familia relacionada no encontrada"})
		return
	}

	vinculo := &models.VinculoFamiliar{
		FamiliaOrigenID:      id,
		FamiliaRelacionadaID: req.FamiliaRelacionadaID,
		TipoVinculo:          req.TipoVinculo,
		PersonaConectoraID:   req.PersonaConectoraID,
	}
	if err := h.db.CrearVinculo(c.Request.Context(), vinculo); err != nil {
		if errors.Is(err, storage.ErrVinculoMismaFamilia) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	otra := familiaResponse(relacionada)
	c.JSON(http.StatusCreated, dto.VinculoResponse{
		ID:                 vinculo.ID,
		Familia:            &otra,
		FamiliaID:          vinculo.OtraFamilia(id),
		TipoVinculo:        vinculo.TipoVinculo,
		PersonaConectoraID: vinculo.PersonaConectoraID,
		CreatedAt:          vinculo.CreatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

// ListarVinculos presents every link touching the family from its own
// point of view: each entry names the family on the other side.
func (h *FamiliaHandler) ListarVinculos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid familia id"})
		return
	}

	iglesiaID := auth.IglesiaID(c)

	familia, err := h.db.ObtenerFamilia(c.Request.Context(), iglesiaID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if familia == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "familia no encontrada"})
		return
	}

	vinculos, err := h.db.VinculosDeFamilia(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.VinculoResponse, 0, len(vinculos))
	for _, v := range vinculos {
		otraID := v.OtraFamilia(id)
		entry := dto.VinculoResponse{
			ID:                 v.ID,
			FamiliaID:          otraID,
			TipoVinculo:        v.TipoVinculo,
			PersonaConectoraID: v.PersonaConectoraID,
			CreatedAt:          v.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
		if otra, err := h.db.ObtenerFamilia(c.Request.Context(), iglesiaID, otraID); err == nil && otra != nil {
			fr := familiaResponse(otra)
			entry.Familia = &fr
		}
		resp = append(resp, entry)
	}

	c.JSON(http.StatusOK, gin.H{"vinculos": resp, "total": len(resp)})
}

func (h *FamiliaHandler) EliminarVinculo(c *gin.Context) {
	familiaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid familia id"})
		return
	}
	vinculoID, err := uuid.Parse(c.Param("vinculoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vinculo id"})
		return
	}

	if err := h.db.EliminarVinculo(c.Request.Context(), auth.IglesiaID(c), familiaID, vinculoID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
