package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	iglesiaHeader = "X-Iglesia-ID"
	iglesiaCtxKey = "iglesia_id"
)

// IglesiaMiddleware resolves the active church from the X-Iglesia-ID
// header. The tenant is always explicit: every query downstream takes
// the resolved id as an argument, never ambient state.
func IglesiaMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(iglesiaHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing " + iglesiaHeader + " header",
			})
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid " + iglesiaHeader + " header",
			})
			return
		}

		c.Set(iglesiaCtxKey, id)
		c.Next()
	}
}

// IglesiaID returns the church id resolved by IglesiaMiddleware.
func IglesiaID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(iglesiaCtxKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
