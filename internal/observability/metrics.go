package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AsistenciasRegistradas = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "comunidad",
		Name:      "asistencias_registradas_total",
		Help:      "Total number of attendance records created",
	}, []string{"iglesia_id"})

	PersonasConvertidas = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "comunidad",
		Name:      "personas_convertidas_total",
		Help:      "Total number of visitors converted to members",
	}, []string{"iglesia_id"})

	FotosSubidas = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "comunidad",
		Name:      "fotos_subidas_total",
		Help:      "Total number of person photos uploaded",
	})

	EventosPublicados = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "comunidad",
		Name:      "eventos_publicados_total",
		Help:      "Total number of domain events published to NATS",
	}, []string{"subject"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "comunidad",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	WSConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "comunidad",
		Name:      "ws_connections",
		Help:      "Number of active WebSocket connections",
	})
)
