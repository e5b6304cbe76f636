package service

import (
	"context"
	"strings"
	"sync"

	"exam_coach_client/internal/config"
	"exam_coach_client/internal/model"
	"exam_coach_client/internal/util"
	"exam_coach_client/pkg/logger"

	"go.uber.org/zap"
)

// Sections of the single-page flow.
const (
	SectionUpload   = "upload"
	SectionAnalysis = "analysis"
	SectionPlan     = "plan"
	SectionProgress = "progress"
	SectionChat     = "chat"
)

var knownSections = map[string]bool{
	SectionUpload:   true,
	SectionAnalysis: true,
	SectionPlan:     true,
	SectionProgress: true,
	SectionChat:     true,
}

// Loading mirrors the loading overlay: text shown while a gateway call or
// pipeline run is pending.
type Loading struct {
	Show bool   `json:"show"`
	Text string `json:"text,omitempty"`
	Sub  string `json:"sub,omitempty"`
}

// ShellState is the snapshot handed to the view layer. Rendering is a pure
// function of this.
type ShellState struct {
	ActiveSection     string                    `json:"activeSection"`
	SelectedStudentID string                    `json:"selectedStudentId,omitempty"`
	ActiveStudentID   string                    `json:"activeStudentId"`
	Analysis          *model.AnalysisResult     `json:"analysis,omitempty"`
	AnalysisFallback  bool                      `json:"analysisFallback"`
	Plan              []model.PlanDay           `json:"plan,omitempty"`
	PlanFallback      bool                      `json:"planFallback"`
	Loading           Loading                   `json:"loading"`
	Uploads           map[UploadMode]ModeStatus `json:"uploads"`
}

// ShellService owns top-level view state and routes pipeline outcomes into
// it. It is the single subscriber of the orchestrator's ready channel.
type ShellService struct {
	uploads *UploadService
	gateway Gateway
	demoCfg config.DemoConfig

	mu                sync.Mutex
	activeSection     string
	selectedStudentID string
	activeStudentID   string
	analysis          *model.AnalysisResult
	analysisFallback  bool
	uploadedTopics    []model.Topic
	plan              []model.PlanDay
	planFallback      bool
	loading           Loading
}

func NewShellService(uploads *UploadService, gateway Gateway, demoCfg config.DemoConfig) *ShellService {
	s := &ShellService{
		uploads:         uploads,
		gateway:         gateway,
		demoCfg:         demoCfg,
		activeSection:   SectionUpload,
		activeStudentID: demoCfg.DefaultStudent,
	}
	s.recoverPending()
	return s
}

// recoverPending drains leftover bridge slots on startup, covering a ready
// signal missed across a restart. Entries are applied exactly as the live
// handler would apply them.
func (s *ShellService) recoverPending() {
	if result, topics, ok := s.uploads.bridge.TakeAnyUploaded(); ok {
		s.apply(AnalysisReady{StudentID: model.UploadedStudentID, Result: *result, Topics: topics})
		logger.Log.Info("recovered pending uploaded analysis")
	}
	if result, studentID, ok := s.uploads.bridge.TakeAnyDemo(); ok {
		s.apply(AnalysisReady{StudentID: studentID, Demo: true, Result: *result})
		logger.Log.Info("recovered pending demo analysis", zap.String("student", studentID))
	}
}

// Run consumes ready signals until the context is done. Exactly one Run
// loop may be active.
func (s *ShellService) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case r := <-s.uploads.Ready():
			s.apply(r)
		}
	}
}

func (s *ShellService) apply(r AnalysisReady) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysis = &r.Result
	s.analysisFallback = false
	s.activeStudentID = r.StudentID
	s.selectedStudentID = r.StudentID
	if !r.Demo {
		s.uploadedTopics = r.Topics
	}
	s.activeSection = SectionAnalysis
}

func (s *ShellService) State() ShellState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ShellState{
		ActiveSection:     s.activeSection,
		SelectedStudentID: s.selectedStudentID,
		ActiveStudentID:   s.activeStudentID,
		Analysis:          s.analysis,
		AnalysisFallback:  s.analysisFallback,
		Plan:              s.plan,
		PlanFallback:      s.planFallback,
		Loading:           s.loading,
		Uploads:           s.uploads.Status(),
	}
}

func (s *ShellService) SetSection(name string) error {
	if !knownSections[name] {
		return util.ErrUnknownSection
	}
	s.mu.Lock()
	s.activeSection = name
	s.mu.Unlock()
	return nil
}

func (s *ShellService) SelectStudent(id string) error {
	if _, ok := model.Students[id]; !ok && id != model.UploadedStudentID {
		return util.ErrStudentNotFound
	}
	s.mu.Lock()
	s.selectedStudentID = id
	s.mu.Unlock()
	return nil
}

func (s *ShellService) setLoading(text, sub string) {
	s.mu.Lock()
	s.loading = Loading{Show: true, Text: text, Sub: sub}
	s.mu.Unlock()
}

func (s *ShellService) clearLoading() {
	s.mu.Lock()
	s.loading = Loading{}
	s.mu.Unlock()
}

// RunAnalysis handles the explicit user action. Failures in this flow fall
// back to fixture data rather than blocking; only a missing selection is an
// error.
func (s *ShellService) RunAnalysis(ctx context.Context) error {
	s.mu.Lock()
	selected := s.selectedStudentID
	s.mu.Unlock()
	if selected == "" {
		return util.ErrNoStudentChosen
	}

	s.setLoading("Analyzing Mock Test...", "Identifying weak topics using AI")
	defer s.clearLoading()

	outcome, err := s.uploads.RunAnalysis(ctx, selected)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if outcome != nil {
		s.analysis = &outcome.Result
		s.analysisFallback = outcome.Fallback
		if selected == model.UploadedStudentID && outcome.Topics != nil {
			s.uploadedTopics = outcome.Topics
		}
	}
	s.activeStudentID = selected
	s.activeSection = SectionAnalysis
	return nil
}

// TryDemo triggers the demo shortcut. The demo student gets selected even
// when the backend is down so the view stays navigable.
func (s *ShellService) TryDemo(ctx context.Context) error {
	s.setLoading("Analyzing Mock Test...", "Identifying weak topics using AI")
	defer s.clearLoading()

	studentID, err := s.uploads.TryDemo(ctx)
	if studentID != "" {
		s.mu.Lock()
		s.selectedStudentID = studentID
		if err != nil {
			// Backend unreachable: stay navigable on static demo content.
			s.activeStudentID = studentID
			s.analysis = nil
			s.analysisFallback = true
		}
		s.mu.Unlock()
	}
	return err
}

// GeneratePlan asks the backend for a 7-day plan for the active student's
// topics. On failure it proceeds with static plan content; navigation is
// never blocked on a backend failure here.
func (s *ShellService) GeneratePlan(ctx context.Context) []model.PlanDay {
	s.mu.Lock()
	active := s.activeStudentID
	topics := s.uploadedTopics
	s.mu.Unlock()

	exam := s.demoCfg.DefaultExam
	if active != model.UploadedStudentID {
		if student, ok := model.Students[active]; ok {
			topics = student.CombinedTopics()
			exam = student.Exam
		}
	}

	s.setLoading("Generating Your 7-Day Plan...", "AI is personalizing your revision schedule")
	defer s.clearLoading()

	plan, err := s.gateway.GeneratePlan(ctx, topics, exam)
	fallback := false
	if err != nil || len(plan) == 0 {
		if err != nil {
			logger.Log.Error("plan generation failed, using default plan",
				zap.String("student", active),
				zap.Error(err))
		}
		plan = s.staticPlan(active)
		fallback = true
	}

	s.mu.Lock()
	s.plan = plan
	s.planFallback = fallback
	s.activeSection = SectionPlan
	s.mu.Unlock()
	return plan
}

// staticPlan prefers the per-student demo plan, then the generic default.
func (s *ShellService) staticPlan(studentID string) []model.PlanDay {
	if plan, ok := model.DemoPlans[studentID]; ok {
		return plan
	}
	return model.DefaultPlan
}

// Plan returns the last generated plan, or static plan content when none
// was generated yet.
func (s *ShellService) Plan() []model.PlanDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plan != nil {
		return s.plan
	}
	return s.staticPlan(s.activeStudentID)
}

// Chat forwards a message to the backend coach; when that fails the reply
// comes from the scripted keyword set so the conversation never dead-ends.
func (s *ShellService) Chat(ctx context.Context, message string) string {
	reply, err := s.gateway.Chat(ctx, message)
	if err != nil {
		logger.Log.Warn("chat call failed, using scripted reply", zap.Error(err))
		return scriptedReply(message)
	}
	return reply
}

func scriptedReply(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "thermodynamics") || strings.Contains(lower, "thermo"):
		return model.ScriptedReplies["thermodynamics"]
	case strings.Contains(lower, "carnot"):
		return model.ScriptedReplies["carnot"]
	case strings.Contains(lower, "organic") || strings.Contains(lower, "sn1") || strings.Contains(lower, "sn2"):
		return model.ScriptedReplies["organic"]
	case strings.Contains(lower, "hour") || (strings.Contains(lower, "study") && strings.Contains(lower, "how")):
		return model.ScriptedReplies["hours"]
	case strings.Contains(lower, "practice") || strings.Contains(lower, "question") || strings.Contains(lower, "mcq"):
		return model.ScriptedReplies["practice"]
	default:
		return model.ScriptedReplies["default"]
	}
}

// ActiveStudent returns the fixture for the active demo student, or nil for
// the uploaded pseudo-student.
func (s *ShellService) ActiveStudent() *model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.Students[s.activeStudentID]
}
