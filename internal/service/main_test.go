package service

import (
	"context"
	"io"
	"os"
	"sync"
	"testing"

	"exam_coach_client/internal/model"
	"exam_coach_client/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// stubGateway counts calls and returns canned answers or errors.
type stubGateway struct {
	mu           sync.Mutex
	analyzeCalls int
	planCalls    int
	chatCalls    int
	ocrCalls     int

	analyzeResult *model.AnalysisResult
	analyzeErr    error
	planResult    []model.PlanDay
	planErr       error
	chatReply     string
	chatErr       error
	ocrResult     *model.OCRResult
	ocrErr        error

	// when set, Analyze blocks until the channel is closed
	analyzeGate chan struct{}
}

func (g *stubGateway) Analyze(ctx context.Context, topics []model.Topic, exam string) (*model.AnalysisResult, error) {
	g.mu.Lock()
	g.analyzeCalls++
	gate := g.analyzeGate
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if g.analyzeErr != nil {
		return nil, g.analyzeErr
	}
	return g.analyzeResult, nil
}

func (g *stubGateway) GeneratePlan(ctx context.Context, topics []model.Topic, exam string) ([]model.PlanDay, error) {
	g.mu.Lock()
	g.planCalls++
	g.mu.Unlock()
	if g.planErr != nil {
		return nil, g.planErr
	}
	return g.planResult, nil
}

func (g *stubGateway) Chat(ctx context.Context, message string) (string, error) {
	g.mu.Lock()
	g.chatCalls++
	g.mu.Unlock()
	if g.chatErr != nil {
		return "", g.chatErr
	}
	return g.chatReply, nil
}

func (g *stubGateway) OCR(ctx context.Context, filename string, file io.Reader, examType string) (*model.OCRResult, error) {
	g.mu.Lock()
	g.ocrCalls++
	g.mu.Unlock()
	if g.ocrErr != nil {
		return nil, g.ocrErr
	}
	return g.ocrResult, nil
}

func (g *stubGateway) calls() (analyze, plan, chat, ocr int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.analyzeCalls, g.planCalls, g.chatCalls, g.ocrCalls
}
