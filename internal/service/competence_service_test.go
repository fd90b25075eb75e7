package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarrelAlex/Alimer/internal/dto"
	"github.com/HarrelAlex/Alimer/internal/model"
)

func floatPtr(v float64) *float64 { return &v }

func TestEvaluate_AnonymousBatch(t *testing.T) {
	svc := NewCompetenceService(nil, nil)

	resp, err := svc.Evaluate(dto.EvaluateCompetenceRequest{
		Topic: "algebra",
		Responses: []dto.ResponseDTO{
			{QuestionID: "q1", Difficulty: 2, IsCorrect: true},
			{QuestionID: "q2", Difficulty: 2, IsCorrect: true},
			{QuestionID: "q3", Difficulty: 2, IsCorrect: false},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "algebra", resp.Topic)
	assert.InDelta(t, 84.11, resp.CompetenceScore, 0.001)
	assert.InDelta(t, 8.41, resp.NormalizedScore, 0.001)
	assert.Equal(t, "Low", resp.ConfidenceLevel)
	assert.Equal(t, 3, resp.TotalQuestions)
	assert.Equal(t, 2, resp.CorrectAnswers)
}

func TestEvaluate_RejectsIncompleteRequests(t *testing.T) {
	svc := NewCompetenceService(nil, nil)

	_, err := svc.Evaluate(dto.EvaluateCompetenceRequest{
		Topic: "",
		Responses: []dto.ResponseDTO{
			{Difficulty: 3, IsCorrect: true},
		},
	})
	assert.Error(t, err)

	_, err = svc.Evaluate(dto.EvaluateCompetenceRequest{Topic: "algebra"})
	assert.Error(t, err)
}

func TestToResponseRecord_Coercion(t *testing.T) {
	tests := []struct {
		name           string
		in             dto.ResponseDTO
		wantDifficulty model.DifficultyLevel
		wantQuality    float64
	}{
		{
			name:           "valid fields pass through",
			in:             dto.ResponseDTO{QuestionID: "q1", Difficulty: 4, IsCorrect: true, QualityScore: floatPtr(0.8)},
			wantDifficulty: model.Hard,
			wantQuality:    0.8,
		},
		{
			name:           "difficulty below range defaults to easy",
			in:             dto.ResponseDTO{QuestionID: "q1", Difficulty: 0, IsCorrect: true},
			wantDifficulty: model.Easy,
			wantQuality:    1.0,
		},
		{
			name:           "difficulty above range defaults to easy",
			in:             dto.ResponseDTO{QuestionID: "q1", Difficulty: 7, IsCorrect: false},
			wantDifficulty: model.Easy,
			wantQuality:    1.0,
		},
		{
			name:           "out of range quality defaults to binary",
			in:             dto.ResponseDTO{QuestionID: "q1", Difficulty: 3, IsCorrect: true, QualityScore: floatPtr(1.5)},
			wantDifficulty: model.Medium,
			wantQuality:    1.0,
		},
		{
			name:           "missing quality defaults to binary",
			in:             dto.ResponseDTO{QuestionID: "q1", Difficulty: 3, IsCorrect: true},
			wantDifficulty: model.Medium,
			wantQuality:    1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toResponseRecord(tt.in)
			assert.Equal(t, tt.wantDifficulty, got.Difficulty)
			assert.Equal(t, tt.wantQuality, got.QualityScore)
			assert.Equal(t, tt.in.IsCorrect, got.IsCorrect)
			assert.False(t, got.Timestamp.IsZero())
		})
	}
}

func TestToResponseRecord_GeneratesMissingQuestionID(t *testing.T) {
	got := toResponseRecord(dto.ResponseDTO{Difficulty: 3, IsCorrect: true})
	assert.NotEmpty(t, got.QuestionID)
}
