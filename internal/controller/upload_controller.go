package controller

import (
	"errors"
	"io"
	"net/http"

	"exam_coach_client/internal/service"
	"exam_coach_client/internal/util"

	"github.com/gin-gonic/gin"
)

// UploadController handles the upload/analysis pipeline endpoints.
type UploadController struct {
	Uploads *service.UploadService
	Shell   *service.ShellService
}

func NewUploadController(uploads *service.UploadService, shell *service.ShellService) *UploadController {
	return &UploadController{Uploads: uploads, Shell: shell}
}

// Upload accepts a mock-test result file (multipart field "file") and runs
// the file-mode pipeline on it.
func (ctrl *UploadController) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "missing file")
		return
	}

	f, err := header.Open()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}

	if err := ctrl.Uploads.UploadFile(c.Request.Context(), header.Filename, string(data)); err != nil {
		ctrl.pipelineError(c, err)
		return
	}

	util.Success(c, ctrl.Uploads.Status())
}

// UploadScan accepts a scanned answer-sheet image and runs the scan-mode
// pipeline.
func (ctrl *UploadController) UploadScan(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "missing file")
		return
	}

	f, err := header.Open()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	defer f.Close()

	if err := ctrl.Uploads.UploadScan(c.Request.Context(), header.Filename, f); err != nil {
		ctrl.pipelineError(c, err)
		return
	}

	util.Success(c, ctrl.Uploads.Status())
}

// TryDemo bypasses file selection and analyzes the demo student.
func (ctrl *UploadController) TryDemo(c *gin.Context) {
	if err := ctrl.Shell.TryDemo(c.Request.Context()); err != nil {
		// The demo student is selected regardless; the view stays usable.
		util.Error(c, http.StatusBadGateway, err.Error())
		return
	}
	util.Success(c, ctrl.Shell.State())
}

// RunAnalysis handles the explicit "Analyze Results" action.
func (ctrl *UploadController) RunAnalysis(c *gin.Context) {
	if err := ctrl.Shell.RunAnalysis(c.Request.Context()); err != nil {
		if errors.Is(err, util.ErrNoStudentChosen) || errors.Is(err, util.ErrStudentNotFound) {
			util.BadRequest(c, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, ctrl.Shell.State())
}

// Status reports both upload modes' pipeline states.
func (ctrl *UploadController) Status(c *gin.Context) {
	util.Success(c, ctrl.Uploads.Status())
}

func (ctrl *UploadController) pipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUploadInFlight):
		util.Conflict(c, err.Error())
	case errors.Is(err, util.ErrInvalidFileType),
		errors.Is(err, util.ErrInvalidImageType),
		errors.Is(err, util.ErrNoValidTopics):
		util.BadRequest(c, err.Error())
	case errors.Is(err, util.ErrNoScanScore):
		util.Error(c, http.StatusUnprocessableEntity, err.Error())
	default:
		util.Error(c, http.StatusBadGateway, err.Error())
	}
}
