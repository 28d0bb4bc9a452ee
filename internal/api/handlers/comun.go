package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// publicarFallido records a failed best-effort event publish. The
// request already succeeded at this point; it must not fail because
// NATS is down.
func publicarFallido(c *gin.Context, subject string, err error) {
	slog.Error("publish event", "subject", subject, "path", c.Request.URL.Path, "error", err)
}
