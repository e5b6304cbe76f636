package service

import (
	"testing"

	"exam_coach_client/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridgeConsumedExactlyOnce(t *testing.T) {
	bridge := NewSessionBridge()
	run := uuid.New()
	bridge.PutUploaded(run, &model.AnalysisResult{OverallScore: 42}, []model.Topic{{Name: "A"}})

	result, topics, ok := bridge.TakeUploaded(run)
	require.True(t, ok)
	assert.Equal(t, 42, result.OverallScore)
	assert.Len(t, topics, 1)

	_, _, ok = bridge.TakeUploaded(run)
	assert.False(t, ok)
	_, _, ok = bridge.TakeAnyUploaded()
	assert.False(t, ok)
}

func TestBridgeSupersededRunIsDiscarded(t *testing.T) {
	bridge := NewSessionBridge()
	first := uuid.New()
	second := uuid.New()

	bridge.PutUploaded(first, &model.AnalysisResult{OverallScore: 1}, nil)
	bridge.PutUploaded(second, &model.AnalysisResult{OverallScore: 2}, nil)

	// The first run's delayed handoff must not observe the second's slot.
	_, _, ok := bridge.TakeUploaded(first)
	assert.False(t, ok)

	result, _, ok := bridge.TakeUploaded(second)
	require.True(t, ok)
	assert.Equal(t, 2, result.OverallScore)
}

func TestBridgeDemoSlot(t *testing.T) {
	bridge := NewSessionBridge()
	run := uuid.New()
	bridge.PutDemo(run, &model.AnalysisResult{OverallScore: 52}, "rahul")

	result, studentID, ok := bridge.TakeAnyDemo()
	require.True(t, ok)
	assert.Equal(t, "rahul", studentID)
	assert.Equal(t, 52, result.OverallScore)

	_, _, ok = bridge.TakeDemo(run)
	assert.False(t, ok)
}
