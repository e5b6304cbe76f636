package controller

import (
	"exam_coach_client/internal/service"
	"exam_coach_client/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Shell *service.ShellService
}

func NewChatController(shell *service.ShellService) *ChatController {
	return &ChatController{Shell: shell}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required" example:"Explain the Carnot cycle simply"`
}

// Chat forwards a coach question. The reply always arrives: a backend
// failure yields a scripted answer instead of an error.
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	reply := ctrl.Shell.Chat(c.Request.Context(), req.Message)
	util.Success(c, gin.H{"reply": reply})
}
