package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/your-org/comunidad/internal/auth"
	"github.com/your-org/comunidad/internal/models"
	"github.com/your-org/comunidad/internal/observability"
	"github.com/your-org/comunidad/internal/queue"
	"github.com/your-org/comunidad/internal/storage"
	"github.com/your-org/comunidad/pkg/dto"
)

type PersonaHandler struct {
	db       *storage.PostgresStore
	fotos    *storage.FotoStore
	producer *queue.Producer
}

func NewPersonaHandler(db *storage.PostgresStore, fotos *storage.FotoStore, producer *queue.Producer) *PersonaHandler {
	return &PersonaHandler{db: db, fotos: fotos, producer: producer}
}

func personaResponse(p *models.Persona) dto.PersonaResponse {
	resp := dto.PersonaResponse{
		ID:            p.ID,
		Nombres:       p.Nombres,
		Apellidos:     p.Apellidos,
		Correo:        p.Correo,
		Telefono:      p.Telefono,
		Celular:       p.Celular,
		Direccion:     p.Direccion,
		Sexo:          p.Sexo,
		EstadoCivil:   p.EstadoCivil,
		Ocupacion:     p.Ocupacion,
		Notas:         p.Notas,
		Rol:           string(p.Rol),
		FamiliaID:     p.FamiliaID,
		ConvertidaAID: p.ConvertidaAID,
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:     p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if p.FotoKey != "" {
		resp.FotoURL = "/v1/personas/" + p.ID.String() + "/foto"
	}
	return resp
}

func (h *PersonaHandler) Create(c *gin.Context) {
	var req dto.CrearPersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	iglesiaID := auth.IglesiaID(c)

	if req.FamiliaID != nil {
		familia, err := h.db.ObtenerFamilia(c.Request.Context(), iglesiaID, *req.FamiliaID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if familia == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "familia no encontrada"})
			return
		}
	}

	persona := &models.Persona{
		IglesiaID:   iglesiaID,
		Nombres:     req.Nombres,
		Apellidos:   req.Apellidos,
		Correo:      req.Correo,
		Telefono:    req.Telefono,
		Celular:     req.Celular,
		Direccion:   req.Direccion,
		Sexo:        req.Sexo,
		EstadoCivil: req.EstadoCivil,
		Ocupacion:   req.Ocupacion,
		Notas:       req.Notas,
		Rol:         models.Rol(req.Rol),
		FamiliaID:   req.FamiliaID,
	}

	if err := h.db.CrearPersona(c.Request.Context(), persona); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, personaResponse(persona))
}

func (h *PersonaHandler) List(c *gin.Context) {
	filtro := storage.FiltroPersonas{
		Rol:    models.Rol(c.Query("rol")),
		Buscar: c.Query("buscar"),
	}
	if famStr := c.Query("familia_id"); famStr != "" {
		id, err := uuid.Parse(famStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid familia_id"})
			return
		}
		filtro.FamiliaID = &id
	}

	personas, err := h.db.ListarPersonas(c.Request.Context(), auth.IglesiaID(c), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.PersonaResponse, 0, len(personas))
	for i := range personas {
		resp = append(resp, personaResponse(&personas[i]))
	}

	c.JSON(http.StatusOK, gin.H{"personas": resp, "total": len(resp)})
}

func (h *PersonaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona id"})
		return
	}

	persona, err := h.db.ObtenerPersona(c.Request.Context(), auth.IglesiaID(c), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if persona == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona no encontrada"})
		return
	}

	c.JSON(http.StatusOK, personaResponse(persona))
}

func (h *PersonaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona id"})
		return
	}

	var req dto.ActualizarPersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	persona.Nombres = req.Nombres
	persona.Apellidos = req.Apellidos
	persona.Correo = req.Correo
	persona.Telefono = req.Telefono
	persona.Celular = req.Celular
	persona.Direccion = req.Direccion
	persona.Sexo = req.Sexo
	persona.EstadoCivil = req.EstadoCivil
	persona.Ocupacion = req.Ocupacion
	persona.Notas = req.Notas

	if err := h.db.ActualizarPersona(c.Request.Context(), persona); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, personaResponse(persona))
}

// AsignarFamilia sets or clears the person's family membership. A null
// familia_id removes the person from their family.
func (h *PersonaHandler) AsignarFamilia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona id"})
		return
	}

	var req dto.AsignarFamiliaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	if req.FamiliaID != nil {
		familia, err := h.db.ObtenerFamilia(c.Request.Context(), iglesiaID, *req.FamiliaID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if familia == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "familia no encontrada"})
			return
		}
	}

	if err := h.db.AsignarFamilia(c.Request.Context(), iglesiaID, id, req.FamiliaID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	persona.FamiliaID = req.FamiliaID
	c.JSON(http.StatusOK, personaResponse(persona))
}

// Convertir runs the VISITA -> MIEMBRO conversion. The original record
// is kept with a reference to the new member; attendance history stays
// on the original.
func (h *PersonaHandler) Convertir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona id"})
		return
	}

	iglesiaID := auth.IglesiaID(c)

	miembro, err := h.db.ConvertirPersona(c.Request.Context(), iglesiaID, id)
	if err != nil {
		if errors.Is(err, models.ErrNoEsVisita) || errors.Is(err, models.ErrYaConvertida) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if miembro == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona no encontrada"})
		return
	}

	observability.PersonasConvertidas.WithLabelValues(iglesiaID.String()).Inc()

	// Publish is best-effort: the conversion already committed.
	evento := models.EventoConversion{
		IglesiaID:     iglesiaID,
		VisitaID:      id,
		MiembroID:     miembro.ID,
		PersonaNombre: miembro.NombreCompleto(),
		Fecha:         time.Now().UTC(),
	}
	if err := h.producer.PublishConversion(c.Request.Context(), evento); err != nil {
		publicarFallido(c, queue.SubjectConversion, err)
	}

	c.JSON(http.StatusCreated, personaResponse(miembro))
}

// SubirFoto accepts a multipart photo upload and stores it in MinIO,
// replacing the previous photo if any.
func (h *PersonaHandler) SubirFoto(c *gin.Context) {
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

	file, header, err := c.Request.FormFile("foto")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foto file required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "read foto failed"})
		return
	}

	key := "fotos/" + id.String() + "/" + uuid.New().String() + "_" + header.Filename
	if err := h.fotos.Put(c.Request.Context(), key, data, header.Header.Get("Content-Type")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store foto failed"})
		return
	}

	if err := h.db.ActualizarFotoKey(c.Request.Context(), iglesiaID, id, key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if persona.FotoKey != "" {
		_ = h.fotos.Delete(c.Request.Context(), persona.FotoKey)
	}

	observability.FotosSubidas.Inc()

	c.JSON(http.StatusCreated, gin.H{"foto_url": "/v1/personas/" + id.String() + "/foto"})
}

// ObtenerFoto serves the stored photo bytes.
func (h *PersonaHandler) ObtenerFoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona id"})
		return
	}

	persona, err := h.db.ObtenerPersona(c.Request.Context(), auth.IglesiaID(c), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if persona == nil || persona.FotoKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "foto no encontrada"})
		return
	}

	data, err := h.fotos.Get(c.Request.Context(), persona.FotoKey)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "foto no encontrada"})
		return
	}

	c.Data(http.StatusOK, "image/jpeg", data)
}

// Ministerios lists the ministries the person serves in.
func (h *PersonaHandler) Ministerios(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid persona id"})
		return
	}

	persona, err := h.db.ObtenerPersona(c.Request.Context(), auth.IglesiaID(c), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if persona == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona no encontrada"})
		return
	}

	ministerios, err := h.db.MinisteriosDePersona(c.Request.Context(), id)
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
