// internal/server/router.go
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"onboarding-engine/internal/common/logger"
)

// NewRouter wires the HTTP routes. maxPayloadBytes caps every request body
// before any handler reads it.
func NewRouter(h *Handler, log logger.Logger, maxPayloadBytes int64) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(bodyLimit(maxPayloadBytes))

	api := router.Group("/api")
	{
		api.POST("/analyze-profile", h.AnalyzeProfile)
		api.POST("/analyze-document", h.AnalyzeDocument)
		api.POST("/live-suggestions", h.LiveSuggestions)
		api.POST("/proposal", h.GenerateProposal)
		api.GET("/session", h.GetSession)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return router
}
