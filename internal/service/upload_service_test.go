package service

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"exam_coach_client/internal/config"
	"exam_coach_client/internal/model"
	"exam_coach_client/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploads(gateway Gateway) *UploadService {
	s := NewUploadService(
		gateway,
		NewReportService(rand.New(rand.NewSource(1))),
		NewSessionBridge(),
		config.DemoConfig{DefaultStudent: "rahul", DefaultExam: "JEE Mains"},
	)
	s.SetReadyDelay(0)
	return s
}

func TestUploadFileRejectsWrongExtension(t *testing.T) {
	gw := &stubGateway{}
	uploads := newTestUploads(gw)

	err := uploads.UploadFile(context.Background(), "results.pdf", "whatever")

	require.ErrorIs(t, err, util.ErrInvalidFileType)
	analyze, _, _, _ := gw.calls()
	assert.Zero(t, analyze)

	status := uploads.Status()[ModeFile]
	assert.Equal(t, StateFailed, status.State)
	assert.Equal(t, "Please upload a CSV or JSON file", status.Message)
}

func TestUploadFileHeaderOnlyFailsBeforeGateway(t *testing.T) {
	gw := &stubGateway{}
	uploads := newTestUploads(gw)

	err := uploads.UploadFile(context.Background(), "results.csv", "name,subject,correct,attempted,score\n")

	require.ErrorIs(t, err, util.ErrNoValidTopics)
	analyze, _, _, _ := gw.calls()
	assert.Zero(t, analyze, "no gateway call may be issued for an empty parse")

	status := uploads.Status()[ModeFile]
	assert.Equal(t, StateFailed, status.State)
	assert.Equal(t, "No valid topics found in the file", status.Message)
}

func TestUploadFileHappyPath(t *testing.T) {
	want := model.AnalysisResult{
		WeakTopics:   []model.Topic{{Name: "Thermo", Subject: "Physics", Correct: 3, Attempted: 10, Score: 30}},
		OverallScore: 30,
	}
	gw := &stubGateway{analyzeResult: &want}
	uploads := newTestUploads(gw)

	err := uploads.UploadFile(context.Background(), "mock.csv", "name,subject,correct,attempted,score\nThermo,Physics,3,10,30\n")
	require.NoError(t, err)

	select {
	case ready := <-uploads.Ready():
		assert.Equal(t, model.UploadedStudentID, ready.StudentID)
		assert.False(t, ready.Demo)
		assert.Equal(t, want, ready.Result)
		require.Len(t, ready.Topics, 1)
		assert.Equal(t, model.Topic{Name: "Thermo", Subject: "Physics", Correct: 3, Attempted: 10, Score: 30}, ready.Topics[0])
	case <-time.After(time.Second):
		t.Fatal("no ready signal delivered")
	}

	// the handoff consumed the bridge slots
	_, _, ok := uploads.bridge.TakeAnyUploaded()
	assert.False(t, ok)

	assert.Equal(t, StateSucceeded, uploads.Status()[ModeFile].State)
}

func TestUploadFileGatewayFailure(t *testing.T) {
	gw := &stubGateway{analyzeErr: &GatewayError{StatusCode: 500, Body: "boom"}}
	uploads := newTestUploads(gw)

	err := uploads.UploadFile(context.Background(), "mock.csv", "h\nThermo,Physics,3,10,30\n")

	require.Error(t, err)
	status := uploads.Status()[ModeFile]
	assert.Equal(t, StateFailed, status.State)
	// generic message only; the status/body detail stays in the log
	assert.Equal(t, "Analysis failed. Please try again.", status.Message)
	assert.NotContains(t, status.Message, "boom")
}

func TestUploadRejectsConcurrentRun(t *testing.T) {
	gate := make(chan struct{})
	gw := &stubGateway{analyzeResult: &model.AnalysisResult{}, analyzeGate: gate}
	uploads := newTestUploads(gw)

	done := make(chan error, 1)
	go func() {
		done <- uploads.UploadFile(context.Background(), "mock.csv", "h\nA,Physics,1,2,50\n")
	}()

	// wait until the first run is inside the gateway call
	require.Eventually(t, func() bool {
		analyze, _, _, _ := gw.calls()
		return analyze == 1
	}, time.Second, time.Millisecond)

	err := uploads.UploadFile(context.Background(), "other.csv", "h\nB,Math,1,2,50\n")
	assert.ErrorIs(t, err, util.ErrUploadInFlight)

	close(gate)
	require.NoError(t, <-done)
	<-uploads.Ready()
}

func TestUploadScanRejectsNonImage(t *testing.T) {
	gw := &stubGateway{}
	uploads := newTestUploads(gw)

	err := uploads.UploadScan(context.Background(), "sheet.csv", strings.NewReader("x"))

	require.ErrorIs(t, err, util.ErrInvalidImageType)
	_, _, _, ocr := gw.calls()
	assert.Zero(t, ocr)
}

func TestUploadScanNoScoreIsExplicitTerminal(t *testing.T) {
	gw := &stubGateway{ocrResult: &model.OCRResult{Success: true}}
	uploads := newTestUploads(gw)

	err := uploads.UploadScan(context.Background(), "sheet.png", strings.NewReader("img"))

	require.ErrorIs(t, err, util.ErrNoScanScore)
	status := uploads.Status()[ModeScan]
	assert.Equal(t, StateNoResult, status.State)
	assert.Equal(t, "No score could be read from the sheet", status.Message)

	select {
	case <-uploads.Ready():
		t.Fatal("no signal may be delivered without a score")
	default:
	}
}

func TestUploadScanHappyPath(t *testing.T) {
	gw := &stubGateway{ocrResult: &model.OCRResult{
		Success:        true,
		TotalQuestions: 25,
		Score:          model.OCRScore{Correct: 60, Wrong: 30, Total: 90, Score: 66.67},
	}}
	uploads := newTestUploads(gw)

	err := uploads.UploadScan(context.Background(), "sheet.jpg", strings.NewReader("img"))
	require.NoError(t, err)

	select {
	case ready := <-uploads.Ready():
		assert.Equal(t, model.UploadedStudentID, ready.StudentID)
		assert.Equal(t, 66, ready.Result.OverallScore)
		assert.Len(t, ready.Topics, 3)
		total := len(ready.Result.WeakTopics) + len(ready.Result.StrongTopics)
		assert.Equal(t, 3, total)
		for _, topic := range ready.Result.WeakTopics {
			assert.Less(t, topic.Score, 60)
		}
		for _, topic := range ready.Result.StrongTopics {
			assert.GreaterOrEqual(t, topic.Score, 60)
		}
	case <-time.After(time.Second):
		t.Fatal("no ready signal delivered")
	}
}

func TestTryDemoSuccess(t *testing.T) {
	want := model.AnalysisResult{OverallScore: 52}
	gw := &stubGateway{analyzeResult: &want}
	uploads := newTestUploads(gw)

	studentID, err := uploads.TryDemo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rahul", studentID)

	select {
	case ready := <-uploads.Ready():
		assert.True(t, ready.Demo)
		assert.Equal(t, "rahul", ready.StudentID)
		assert.Equal(t, want, ready.Result)
	case <-time.After(time.Second):
		t.Fatal("no ready signal delivered")
	}
}

func TestTryDemoBackendDownStillSelectsStudent(t *testing.T) {
	gw := &stubGateway{analyzeErr: &GatewayError{StatusCode: 503, Body: "down"}}
	uploads := newTestUploads(gw)

	studentID, err := uploads.TryDemo(context.Background())

	assert.Equal(t, "rahul", studentID)
	require.ErrorIs(t, err, util.ErrBackendDown)

	select {
	case <-uploads.Ready():
		t.Fatal("no signal may be delivered on gateway failure")
	default:
	}
}

func TestRunAnalysisConsumesUploadedDirectly(t *testing.T) {
	gw := &stubGateway{}
	uploads := newTestUploads(gw)

	pending := &model.AnalysisResult{OverallScore: 77}
	uploads.bridge.PutUploaded(uuid.New(), pending, []model.Topic{{Name: "A"}})

	outcome, err := uploads.RunAnalysis(context.Background(), model.UploadedStudentID)
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.False(t, outcome.Fallback)
	assert.Equal(t, 77, outcome.Result.OverallScore)

	analyze, _, _, _ := gw.calls()
	assert.Zero(t, analyze, "a pending uploaded result must not trigger a new gateway call")

	// consumed: a second run has nothing to take
	outcome, err = uploads.RunAnalysis(context.Background(), model.UploadedStudentID)
	require.NoError(t, err)
	assert.Nil(t, outcome)
}

func TestRunAnalysisDemoFallsBackToFixture(t *testing.T) {
	gw := &stubGateway{analyzeErr: &GatewayError{StatusCode: 502, Body: "bad gateway"}}
	uploads := newTestUploads(gw)

	outcome, err := uploads.RunAnalysis(context.Background(), "priya")
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.True(t, outcome.Fallback)
	assert.Equal(t, model.Students["priya"].StaticAnalysis(), outcome.Result)
}

func TestRunAnalysisUnknownStudent(t *testing.T) {
	uploads := newTestUploads(&stubGateway{})

	_, err := uploads.RunAnalysis(context.Background(), "nobody")
	assert.ErrorIs(t, err, util.ErrStudentNotFound)
}
