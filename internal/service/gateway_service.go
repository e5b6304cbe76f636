package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"exam_coach_client/internal/config"
	"exam_coach_client/internal/model"
	"exam_coach_client/pkg/monitoring"
)

// Gateway is the typed request/response surface of the external analysis
// backend. Implementations carry no retry logic; callers must not assume
// more failure granularity than "it failed".
type Gateway interface {
	Analyze(ctx context.Context, topics []model.Topic, exam string) (*model.AnalysisResult, error)
	GeneratePlan(ctx context.Context, topics []model.Topic, exam string) ([]model.PlanDay, error)
	Chat(ctx context.Context, message string) (string, error)
	OCR(ctx context.Context, filename string, file io.Reader, examType string) (*model.OCRResult, error)
}

// GatewayError is the single failure kind for every backend call. Transport
// errors carry StatusCode 0; HTTP rejections carry the status and the raw
// response body text.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("backend API error (status %d): %s", e.StatusCode, e.Body)
}

type GatewayService struct {
	config config.BackendConfig
	client *http.Client
}

func NewGatewayService(cfg config.BackendConfig) *GatewayService {
	return &GatewayService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type analyzeRequest struct {
	Topics []model.Topic `json:"topics"`
	Exam   string        `json:"exam"`
}

type planResponse struct {
	Plan []model.PlanDay `json:"plan"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *GatewayService) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return &GatewayError{Body: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return &GatewayError{Body: err.Error()}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return s.do(req, out)
}

// do sends the request and decodes a 2xx response into out. Any other
// outcome collapses into *GatewayError.
func (s *GatewayService) do(req *http.Request, out interface{}) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return &GatewayError{Body: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &GatewayError{StatusCode: resp.StatusCode, Body: err.Error()}
	}
	return nil
}

func (s *GatewayService) Analyze(ctx context.Context, topics []model.Topic, exam string) (*model.AnalysisResult, error) {
	start := time.Now()
	var result model.AnalysisResult
	err := s.postJSON(ctx, "/api/analyze", analyzeRequest{Topics: topics, Exam: exam}, &result)
	monitoring.ObserveGatewayCall("analyze", start, err)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *GatewayService) GeneratePlan(ctx context.Context, topics []model.Topic, exam string) ([]model.PlanDay, error) {
	start := time.Now()
	var result planResponse
	err := s.postJSON(ctx, "/api/plan", analyzeRequest{Topics: topics, Exam: exam}, &result)
	monitoring.ObserveGatewayCall("plan", start, err)
	if err != nil {
		return nil, err
	}
	return result.Plan, nil
}

func (s *GatewayService) Chat(ctx context.Context, message string) (string, error) {
	start := time.Now()
	var result chatResponse
	err := s.postJSON(ctx, "/api/chat", chatRequest{Message: message}, &result)
	monitoring.ObserveGatewayCall("chat", start, err)
	if err != nil {
		return "", err
	}
	return result.Reply, nil
}

// OCR submits the raw answer-sheet image as multipart form data. No content
// type is set by hand; the multipart writer owns the boundary.
func (s *GatewayService) OCR(ctx context.Context, filename string, file io.Reader, examType string) (*model.OCRResult, error) {
	start := time.Now()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, &GatewayError{Body: err.Error()}
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, &GatewayError{Body: err.Error()}
	}
	if err := writer.WriteField("exam_type", examType); err != nil {
		return nil, &GatewayError{Body: err.Error()}
	}
	if err := writer.Close(); err != nil {
		return nil, &GatewayError{Body: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/api/ocr", &buf)
	if err != nil {
		return nil, &GatewayError{Body: err.Error()}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result model.OCRResult
	doErr := s.do(req, &result)
	monitoring.ObserveGatewayCall("ocr", start, doErr)
	if doErr != nil {
		return nil, doErr
	}
	return &result, nil
}
