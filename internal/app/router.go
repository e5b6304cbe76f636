package app

import (
	"exam_coach_client/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/state", c.shell.GetState)
		api.POST("/section", c.shell.SetSection)

		api.GET("/students", c.student.List)
		api.GET("/students/:id", c.student.Get)
		api.POST("/students/select", c.student.Select)
		api.GET("/progress", c.student.Progress)

		// The upload/analysis pipeline
		api.POST("/upload", c.upload.Upload)
		api.POST("/upload/scan", c.upload.UploadScan)
		api.POST("/upload/demo", c.upload.TryDemo)
		api.GET("/upload/status", c.upload.Status)
		api.POST("/analysis/run", c.upload.RunAnalysis)

		api.POST("/plan/generate", c.plan.Generate)
		api.GET("/plan", c.plan.Get)

		api.POST("/chat", c.chat.Chat)
	}
}
