package controller

import (
	"exam_coach_client/internal/config"
	"exam_coach_client/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Config *config.Config
}

func NewHealthController(cfg *config.Config) *HealthController {
	return &HealthController{Config: cfg}
}

// HealthCheck reports liveness and the configured backend target. The
// backend is not probed: its availability only matters per-call, and every
// pipeline path degrades gracefully when it is down.
func (ctrl *HealthController) HealthCheck(c *gin.Context) {
	util.Success(c, gin.H{
		"status":  "ok",
		"backend": ctrl.Config.Backend.BaseURL,
	})
}
