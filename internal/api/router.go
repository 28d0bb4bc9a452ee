package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/your-org/comunidad/internal/api/handlers"
	"github.com/your-org/comunidad/internal/api/ws"
	"github.com/your-org/comunidad/internal/auth"
	"github.com/your-org/comunidad/internal/queue"
	"github.com/your-org/comunidad/internal/storage"
)

type RouterConfig struct {
	APIKey   string
	DB       *storage.PostgresStore
	Fotos    *storage.FotoStore
	Producer *queue.Producer
	Hub      *ws.Hub
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(LoggingMiddleware())
	r.Use(cors.Default())

	// System endpoints (no auth)
	systemH := handlers.NewSystemHandler(cfg.DB, cfg.Fotos, cfg.Producer)
	r.GET("/healthz", systemH.Healthz)
	r.GET("/readyz", systemH.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 (with auth and tenant resolution)
	v1 := r.Group("/v1")
	v1.Use(auth.APIKeyMiddleware(cfg.APIKey))

	// WebSocket (filterable by iglesia_id query param)
	v1.GET("/ws", cfg.Hub.HandleWS)

	t := v1.Group("")
	t.Use(auth.IglesiaMiddleware())

	// Personas
	personaH := handlers.NewPersonaHandler(cfg.DB, cfg.Fotos, cfg.Producer)
	t.POST("/personas", personaH.Create)
	t.GET("/personas", personaH.List)
	t.GET("/personas/:id", personaH.Get)
	t.PUT("/personas/:id", personaH.Update)
	t.PUT("/personas/:id/familia", personaH.AsignarFamilia)
	t.POST("/personas/:id/convertir", personaH.Convertir)
	t.POST("/personas/:id/foto", personaH.SubirFoto)
	t.GET("/personas/:id/foto", personaH.ObtenerFoto)
	t.GET("/personas/:id/ministerios", personaH.Ministerios)

	// Familiares (aggregated relative view + explicit relations)
	familiarH := handlers.NewFamiliarHandler(cfg.DB)
	t.GET("/personas/:id/familiares", familiarH.Listar)
	t.POST("/personas/:id/familiares", familiarH.CrearRelacion)
	t.GET("/familiares/sugerencia", familiarH.Sugerencia)
	t.DELETE("/familiares/:id", familiarH.EliminarRelacion)

	// Familias
	familiaH := handlers.NewFamiliaHandler(cfg.DB)
	t.POST("/familias", familiaH.Create)
	t.GET("/familias", familiaH.List)
	t.GET("/familias/:id", familiaH.Get)
	t.PUT("/familias/:id", familiaH.Update)
	t.POST("/familias/:id/vinculos", familiaH.CrearVinculo)
	t.GET("/familias/:id/vinculos", familiaH.ListarVinculos)
	t.DELETE("/familias/:id/vinculos/:vinculoId", familiaH.EliminarVinculo)

	// Ministerios
	ministerioH := handlers.NewMinisterioHandler(cfg.DB)
	t.POST("/ministerios", ministerioH.Create)
	t.GET("/ministerios", ministerioH.List)
	t.PUT("/ministerios/:id", ministerioH.Update)
	t.POST("/ministerios/:id/personas", ministerioH.Asignar)
	t.DELETE("/ministerios/:id/personas/:personaId", ministerioH.Quitar)

	// Actividades
	actividadH := handlers.NewActividadHandler(cfg.DB)
	t.POST("/tipos-actividad", actividadH.CreateTipo)
	t.GET("/tipos-actividad", actividadH.ListTipos)
	t.POST("/actividades", actividadH.Create)
	t.GET("/actividades", actividadH.List)
	t.GET("/actividades/:id", actividadH.Get)
	t.PUT("/actividades/:id", actividadH.Update)
	t.POST("/actividades/:id/horarios", actividadH.CreateHorario)
	t.GET("/actividades/:id/horarios", actividadH.ListHorarios)
	t.DELETE("/horarios/:id", actividadH.DeleteHorario)

	// Asistencias
	asistenciaH := handlers.NewAsistenciaHandler(cfg.DB, cfg.Producer)
	t.POST("/asistencias", asistenciaH.Create)
	t.GET("/asistencias", asistenciaH.List)
	t.GET("/asistencias/seleccion", asistenciaH.Seleccion)
	t.GET("/asistencias/resumen", asistenciaH.Resumen)

	return r
}
