package controller

import (
	"errors"
	"sort"

	"exam_coach_client/internal/model"
	"exam_coach_client/internal/service"
	"exam_coach_client/internal/util"

	"github.com/gin-gonic/gin"
)

// StudentController serves the demo student fixtures and selection.
type StudentController struct {
	Shell *service.ShellService
}

func NewStudentController(shell *service.ShellService) *StudentController {
	return &StudentController{Shell: shell}
}

type SelectStudentRequest struct {
	ID string `json:"id" binding:"required"`
}

// List returns the demo students in stable order.
func (ctrl *StudentController) List(c *gin.Context) {
	ids := make([]string, 0, len(model.Students))
	for id := range model.Students {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	students := make([]*model.Student, 0, len(ids))
	for _, id := range ids {
		students = append(students, model.Students[id])
	}
	util.Success(c, students)
}

// Get returns one demo student fixture.
func (ctrl *StudentController) Get(c *gin.Context) {
	student, ok := model.Students[c.Param("id")]
	if !ok {
		util.NotFound(c)
		return
	}
	util.Success(c, student)
}

// Select marks a student (or the uploaded pseudo-student) as the pending
// selection.
func (ctrl *StudentController) Select(c *gin.Context) {
	var req SelectStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	if err := ctrl.Shell.SelectStudent(req.ID); err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(c)
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, ctrl.Shell.State())
}

// Progress returns the active student's trend and subject stats for the
// progress view. The uploaded pseudo-student has no fixture history.
func (ctrl *StudentController) Progress(c *gin.Context) {
	student := ctrl.Shell.ActiveStudent()
	if student == nil {
		util.NotFound(c)
		return
	}
	util.Success(c, gin.H{
		"trend":    student.Trend,
		"subjects": student.Subjects,
		"streak":   student.Streak,
		"planDone": student.PlanDone,
		"scoreUp":  student.ScoreUp,
	})
}
