package controller

import (
	"exam_coach_client/internal/service"
	"exam_coach_client/internal/util"

	"github.com/gin-gonic/gin"
)

// ShellController exposes the top-level view state.
type ShellController struct {
	Shell *service.ShellService
}

func NewShellController(shell *service.ShellService) *ShellController {
	return &ShellController{Shell: shell}
}

type SetSectionRequest struct {
	Section string `json:"section" binding:"required" example:"analysis"`
}

// GetState returns the full shell snapshot the view renders from.
func (ctrl *ShellController) GetState(c *gin.Context) {
	util.Success(c, ctrl.Shell.State())
}

// SetSection switches the active section.
func (ctrl *ShellController) SetSection(c *gin.Context) {
	var req SetSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.Shell.SetSection(req.Section); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	util.Success(c, ctrl.Shell.State())
}
