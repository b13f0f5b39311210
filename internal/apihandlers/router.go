package apihandlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// NewRouter registers every route on a fresh gin engine.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/groups", h.GroupsHandler)
		v1.GET("/categories", h.ListCategoriesHandler)
		v1.GET("/categories/:slug", h.GetCategoryHandler)
		v1.GET("/random/subject", h.RandomSubjectHandler)
		v1.POST("/study/suggest", h.StudyHandler)
		v1.POST("/professional/brief", h.BriefHandler)
		v1.POST("/keywords", h.KeywordsHandler)
		v1.GET("/history", h.HistoryHandler)
		v1.GET("/history/:id", h.GetArtifactHandler)
		v1.GET("/cost/summary", h.CostSummaryHandler)
		v1.GET("/cost/usage", h.CostUsageHandler)
	}
	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("HTTP request")
	}
}
