package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"exam_coach_client/internal/config"
	"exam_coach_client/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(baseURL string) *GatewayService {
	return NewGatewayService(config.BackendConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	})
}

func TestAnalyzeSendsTopicsAndExam(t *testing.T) {
	var got analyzeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/analyze", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(model.AnalysisResult{
			WeakTopics:   []model.Topic{{Name: "Thermodynamics", Subject: "Physics", Score: 30}},
			StrongTopics: []model.Topic{{Name: "Optics", Subject: "Physics", Score: 85}},
			OverallScore: 58,
		})
	}))
	defer srv.Close()

	gw := newTestGateway(srv.URL)
	result, err := gw.Analyze(context.Background(),
		[]model.Topic{{Name: "Thermodynamics", Subject: "Physics", Correct: 3, Attempted: 10, Score: 30}},
		"JEE Mains")
	require.NoError(t, err)

	assert.Equal(t, "JEE Mains", got.Exam)
	require.Len(t, got.Topics, 1)
	assert.Equal(t, "Thermodynamics", got.Topics[0].Name)

	assert.Equal(t, 58, result.OverallScore)
	require.Len(t, result.WeakTopics, 1)
	assert.Equal(t, "Thermodynamics", result.WeakTopics[0].Name)
}

func TestAnalyzeNon2xxCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	gw := newTestGateway(srv.URL)
	result, err := gw.Analyze(context.Background(), nil, "JEE Mains")
	require.Error(t, err)
	assert.Nil(t, result)

	var gerr *GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusServiceUnavailable, gerr.StatusCode)
	assert.Contains(t, gerr.Body, "model overloaded")
	assert.Contains(t, gerr.Error(), "status 503")
}

func TestAnalyzeTransportErrorHasZeroStatus(t *testing.T) {
	gw := newTestGateway("http://127.0.0.1:1")

	_, err := gw.Analyze(context.Background(), nil, "NEET")
	require.Error(t, err)

	var gerr *GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Zero(t, gerr.StatusCode)
}

func TestGeneratePlanUnwrapsPlanField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/plan", r.URL.Path)
		json.NewEncoder(w).Encode(planResponse{Plan: []model.PlanDay{
			{Day: 1, Title: "Foundation Day", Focus: "Thermodynamics"},
			{Day: 2, Title: "Deep Dive", Focus: "Organic Chemistry"},
		}})
	}))
	defer srv.Close()

	gw := newTestGateway(srv.URL)
	plan, err := gw.GeneratePlan(context.Background(), nil, "JEE Mains")
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, 1, plan[0].Day)
	assert.Equal(t, "Deep Dive", plan[1].Title)
}

func TestChatRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(chatResponse{Reply: "echo: " + req.Message})
	}))
	defer srv.Close()

	gw := newTestGateway(srv.URL)
	reply, err := gw.Chat(context.Background(), "how do I improve in thermodynamics?")
	require.NoError(t, err)
	assert.Equal(t, "echo: how do I improve in thermodynamics?", reply)
}

func TestOCRSubmitsMultipartForm(t *testing.T) {
	var gotFilename, gotExamType, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ocr", r.URL.Path)
		require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)

		gotFilename = header.Filename
		gotExamType = r.FormValue("exam_type")
		gotContent = string(content)

		json.NewEncoder(w).Encode(model.OCRResult{
			Success:        true,
			TotalQuestions: 90,
			Score:          model.OCRScore{Correct: 54, Wrong: 27, Unanswered: 9, Total: 90, Score: 61.5},
			ExamType:       gotExamType,
		})
	}))
	defer srv.Close()

	gw := newTestGateway(srv.URL)
	result, err := gw.OCR(context.Background(), "sheet.png", strings.NewReader("fake png bytes"), "JEE Mains")
	require.NoError(t, err)

	assert.Equal(t, "sheet.png", gotFilename)
	assert.Equal(t, "JEE Mains", gotExamType)
	assert.Equal(t, "fake png bytes", gotContent)

	assert.True(t, result.Success)
	assert.Equal(t, 54, result.Score.Correct)
	assert.Equal(t, 61.5, result.Score.Score)
}

func TestOCRNon2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unsupported image", http.StatusBadRequest)
	}))
	defer srv.Close()

	gw := newTestGateway(srv.URL)
	result, err := gw.OCR(context.Background(), "sheet.jpg", strings.NewReader("x"), "NEET")
	require.Error(t, err)
	assert.Nil(t, result)

	var gerr *GatewayError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode)
}
