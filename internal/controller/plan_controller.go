package controller

import (
	"exam_coach_client/internal/service"
	"exam_coach_client/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Shell *service.ShellService
}

func NewPlanController(shell *service.ShellService) *PlanController {
	return &PlanController{Shell: shell}
}

// Generate builds a 7-day plan for the active student. Backend failures
// degrade to the static plan; this endpoint never reports an error for them.
func (ctrl *PlanController) Generate(c *gin.Context) {
	plan := ctrl.Shell.GeneratePlan(c.Request.Context())
	util.Success(c, gin.H{"plan": plan})
}

// Get returns the last generated plan, or static content when none exists.
func (ctrl *PlanController) Get(c *gin.Context) {
	util.Success(c, gin.H{"plan": ctrl.Shell.Plan()})
}
