package service

import (
	"sync"

	"exam_coach_client/internal/model"

	"github.com/google/uuid"
)

// SessionBridge hands analysis results across the upload-to-analysis
// transition. It replaces ambient key-value session storage with typed
// slots owned by the pipeline: each slot is written once per run and
// consumed at most once, and a take is read+clear under one lock so a
// second run overlapping the handoff cannot observe a half-consumed slot.
// A slot written by a newer run simply supersedes the older one; takes
// keyed by run ID let a straggler delivery detect it was superseded.
type SessionBridge struct {
	mu sync.Mutex

	uploadedRun      uuid.UUID
	uploadedAnalysis *model.AnalysisResult
	uploadedTopics   []model.Topic

	demoRun      uuid.UUID
	demoAnalysis *model.AnalysisResult
	demoStudent  string
}

func NewSessionBridge() *SessionBridge {
	return &SessionBridge{}
}

func (b *SessionBridge) PutUploaded(run uuid.UUID, result *model.AnalysisResult, topics []model.Topic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uploadedRun = run
	b.uploadedAnalysis = result
	b.uploadedTopics = topics
}

// TakeUploaded consumes the uploaded slot if it still belongs to the given
// run. Returns false when the slot is empty or was superseded.
func (b *SessionBridge) TakeUploaded(run uuid.UUID) (*model.AnalysisResult, []model.Topic, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.uploadedAnalysis == nil || b.uploadedRun != run {
		return nil, nil, false
	}
	return b.clearUploadedLocked()
}

// TakeAnyUploaded consumes whatever uploaded result is pending, regardless
// of run. Used by reload recovery and by an explicit run-analysis on the
// uploaded pseudo-student.
func (b *SessionBridge) TakeAnyUploaded() (*model.AnalysisResult, []model.Topic, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.uploadedAnalysis == nil {
		return nil, nil, false
	}
	return b.clearUploadedLocked()
}

func (b *SessionBridge) clearUploadedLocked() (*model.AnalysisResult, []model.Topic, bool) {
	result, topics := b.uploadedAnalysis, b.uploadedTopics
	b.uploadedAnalysis = nil
	b.uploadedTopics = nil
	b.uploadedRun = uuid.UUID{}
	return result, topics, true
}

func (b *SessionBridge) PutDemo(run uuid.UUID, result *model.AnalysisResult, studentID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.demoRun = run
	b.demoAnalysis = result
	b.demoStudent = studentID
}

func (b *SessionBridge) TakeDemo(run uuid.UUID) (*model.AnalysisResult, string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.demoAnalysis == nil || b.demoRun != run {
		return nil, "", false
	}
	return b.clearDemoLocked()
}

func (b *SessionBridge) TakeAnyDemo() (*model.AnalysisResult, string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.demoAnalysis == nil {
		return nil, "", false
	}
	return b.clearDemoLocked()
}

func (b *SessionBridge) clearDemoLocked() (*model.AnalysisResult, string, bool) {
	result, student := b.demoAnalysis, b.demoStudent
	b.demoAnalysis = nil
	b.demoStudent = ""
	b.demoRun = uuid.UUID{}
	return result, student, true
}
