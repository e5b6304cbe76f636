package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"exam_coach_client/internal/config"
	"exam_coach_client/internal/model"
	"exam_coach_client/internal/util"
	"exam_coach_client/pkg/logger"
	"exam_coach_client/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UploadMode string

const (
	ModeFile UploadMode = "file"
	ModeScan UploadMode = "scan"
)

type UploadState string

const (
	StateIdle      UploadState = "idle"
	StateUploading UploadState = "uploading"
	StateSucceeded UploadState = "succeeded"
	StateFailed    UploadState = "failed"
	StateNoResult  UploadState = "no_result"
)

// Fixed user-facing messages for gateway failures. Detail goes to the log.
const (
	fileFailureMsg = "Analysis failed. Please try again."
	scanFailureMsg = "Scan failed. Please try again."
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ModeStatus is one upload mode's terminal state and user-visible message.
type ModeStatus struct {
	State   UploadState `json:"state"`
	Message string      `json:"message,omitempty"`
}

// AnalysisReady is the single-consumer signal delivered to the shell when
// a pipeline run has produced a result.
type AnalysisReady struct {
	RunID     uuid.UUID
	StudentID string
	Demo      bool
	Result    model.AnalysisResult
	Topics    []model.Topic
}

// AnalysisOutcome is a two-branch result: either the backend's analysis or
// a static fallback, made explicit so callers (and tests) can tell which
// branch fired.
type AnalysisOutcome struct {
	Result   model.AnalysisResult
	Topics   []model.Topic
	Fallback bool
}

// UploadService runs the upload/analysis pipeline: accept a file or a demo
// selection, produce topics, submit them to the gateway, park the outcome
// in the session bridge and signal the shell. Steps within one run execute
// strictly sequentially; an in-flight flag rejects overlapping uploads.
type UploadService struct {
	gateway Gateway
	reports *ReportService
	bridge  *SessionBridge
	demoCfg config.DemoConfig

	ready      chan AnalysisReady
	readyDelay time.Duration

	inFlight atomic.Bool
	statusMu sync.Mutex
	status   map[UploadMode]ModeStatus
}

func NewUploadService(gateway Gateway, reports *ReportService, bridge *SessionBridge, demoCfg config.DemoConfig) *UploadService {
	return &UploadService{
		gateway:    gateway,
		reports:    reports,
		bridge:     bridge,
		demoCfg:    demoCfg,
		ready:      make(chan AnalysisReady, 4),
		readyDelay: 400 * time.Millisecond,
		status: map[UploadMode]ModeStatus{
			ModeFile: {State: StateIdle},
			ModeScan: {State: StateIdle},
		},
	}
}

// SetReadyDelay overrides the handoff delay between a completed run and its
// ready signal. Tests set zero.
func (s *UploadService) SetReadyDelay(d time.Duration) {
	s.readyDelay = d
}

// Ready returns the single-subscriber result channel.
func (s *UploadService) Ready() <-chan AnalysisReady {
	return s.ready
}

func (s *UploadService) Status() map[UploadMode]ModeStatus {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	out := make(map[UploadMode]ModeStatus, len(s.status))
	for k, v := range s.status {
		out[k] = v
	}
	return out
}

func (s *UploadService) setStatus(mode UploadMode, state UploadState, message string) {
	s.statusMu.Lock()
	s.status[mode] = ModeStatus{State: state, Message: message}
	s.statusMu.Unlock()
	if state == StateSucceeded || state == StateFailed || state == StateNoResult {
		monitoring.UploadCounter.WithLabelValues(string(mode), string(state)).Inc()
	}
}

// UploadFile runs the file-mode pipeline on the raw text of an uploaded
// mock-test result.
func (s *UploadService) UploadFile(ctx context.Context, filename, content string) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return util.ErrUploadInFlight
	}
	defer s.inFlight.Store(false)

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".csv" && ext != ".json" {
		// Rejected before any I/O; no transition to uploading happens.
		s.setStatus(ModeFile, StateFailed, util.ErrInvalidFileType.Error())
		return util.ErrInvalidFileType
	}

	s.setStatus(ModeFile, StateUploading, "")

	topics := s.reports.ParseCSV(content)
	if len(topics) == 0 {
		s.setStatus(ModeFile, StateFailed, util.ErrNoValidTopics.Error())
		return util.ErrNoValidTopics
	}

	result, err := s.gateway.Analyze(ctx, topics, s.demoCfg.DefaultExam)
	if err != nil {
		logger.Log.Error("analyze call failed",
			zap.String("mode", string(ModeFile)),
			zap.String("file", filename),
			zap.Error(err))
		s.setStatus(ModeFile, StateFailed, fileFailureMsg)
		return util.ErrBackendDown
	}

	run := uuid.New()
	s.bridge.PutUploaded(run, result, topics)
	s.handoffUploaded(run)
	s.setStatus(ModeFile, StateSucceeded, "")

	logger.Log.Info("upload analysis ready",
		zap.String("run", run.String()),
		zap.Int("topics", len(topics)),
		zap.Int("overall", result.OverallScore))
	return nil
}

// UploadScan runs the scan-mode pipeline on a scanned answer-sheet image.
func (s *UploadService) UploadScan(ctx context.Context, filename string, file io.Reader) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return util.ErrUploadInFlight
	}
	defer s.inFlight.Store(false)

	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		s.setStatus(ModeScan, StateFailed, util.ErrInvalidImageType.Error())
		return util.ErrInvalidImageType
	}

	s.setStatus(ModeScan, StateUploading, "")

	ocr, err := s.gateway.OCR(ctx, filename, file, s.demoCfg.DefaultExam)
	if err != nil {
		logger.Log.Error("ocr call failed",
			zap.String("mode", string(ModeScan)),
			zap.String("file", filename),
			zap.Error(err))
		s.setStatus(ModeScan, StateFailed, scanFailureMsg)
		return util.ErrBackendDown
	}

	if !ocr.Success || ocr.Score.Total == 0 {
		// Terminal no-result state with a visible message, not a quiet end.
		s.setStatus(ModeScan, StateNoResult, util.ErrNoScanScore.Error())
		return util.ErrNoScanScore
	}

	topics := s.reports.ConvertScan(ocr.Score)
	weak, strong := Partition(topics)
	result := &model.AnalysisResult{
		WeakTopics:   weak,
		StrongTopics: strong,
		OverallScore: int(ocr.Score.Score),
	}

	run := uuid.New()
	s.bridge.PutUploaded(run, result, topics)
	s.handoffUploaded(run)
	s.setStatus(ModeScan, StateSucceeded, "")

	logger.Log.Info("scan analysis ready",
		zap.String("run", run.String()),
		zap.Int("questions", ocr.TotalQuestions))
	return nil
}

// handoffUploaded waits the fixed handoff delay, then consumes the bridge
// slot and signals the shell. A run superseded during the delay finds its
// slot gone and stays silent.
func (s *UploadService) handoffUploaded(run uuid.UUID) {
	time.Sleep(s.readyDelay)
	result, topics, ok := s.bridge.TakeUploaded(run)
	if !ok {
		logger.Log.Warn("upload handoff superseded", zap.String("run", run.String()))
		return
	}
	s.ready <- AnalysisReady{
		RunID:     run,
		StudentID: model.UploadedStudentID,
		Result:    *result,
		Topics:    topics,
	}
}

// TryDemo bypasses file selection: it analyzes the fixed demo student's
// combined topic list. The student id is returned in every case so the
// caller can select it even when the backend was unreachable.
func (s *UploadService) TryDemo(ctx context.Context) (string, error) {
	student, ok := model.Students[s.demoCfg.DefaultStudent]
	if !ok {
		return "", util.ErrStudentNotFound
	}

	result, err := s.gateway.Analyze(ctx, student.CombinedTopics(), student.Exam)
	if err != nil {
		logger.Log.Error("demo analyze failed", zap.String("student", student.ID), zap.Error(err))
		return student.ID, util.ErrBackendDown
	}

	run := uuid.New()
	s.bridge.PutDemo(run, result, student.ID)

	time.Sleep(s.readyDelay)
	taken, studentID, ok := s.bridge.TakeDemo(run)
	if !ok {
		logger.Log.Warn("demo handoff superseded", zap.String("run", run.String()))
		return student.ID, nil
	}
	s.ready <- AnalysisReady{
		RunID:     run,
		StudentID: studentID,
		Demo:      true,
		Result:    *taken,
	}
	return student.ID, nil
}

// RunAnalysis handles the explicit "Analyze Results" action. A pending
// uploaded result is consumed directly when the uploaded pseudo-student is
// selected; a demo student goes through the gateway with a static-fixture
// fallback. A nil outcome with nil error means there was nothing to do.
func (s *UploadService) RunAnalysis(ctx context.Context, selectedID string) (*AnalysisOutcome, error) {
	if selectedID == model.UploadedStudentID {
		result, topics, ok := s.bridge.TakeAnyUploaded()
		if !ok {
			return nil, nil
		}
		return &AnalysisOutcome{Result: *result, Topics: topics}, nil
	}

	student, ok := model.Students[selectedID]
	if !ok {
		return nil, util.ErrStudentNotFound
	}

	result, err := s.gateway.Analyze(ctx, student.CombinedTopics(), student.Exam)
	if err != nil {
		logger.Log.Warn("analyze failed, falling back to fixture",
			zap.String("student", student.ID),
			zap.Error(err))
		return &AnalysisOutcome{Result: student.StaticAnalysis(), Fallback: true}, nil
	}
	return &AnalysisOutcome{Result: *result, Topics: student.CombinedTopics()}, nil
}
