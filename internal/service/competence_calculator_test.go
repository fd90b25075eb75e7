package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HarrelAlex/Alimer/internal/model"
)

func record(difficulty int, correct bool, quality float64) model.ResponseRecord {
	return model.ResponseRecord{
		Difficulty:   model.DifficultyLevel(difficulty),
		IsCorrect:    correct,
		QualityScore: quality,
	}
}

func uniformRecords(n, difficulty int, correct bool) []model.ResponseRecord {
	records := make([]model.ResponseRecord, n)
	for i := range records {
		records[i] = record(difficulty, correct, 1.0)
	}
	return records
}

func TestCalculateCompetenceScore(t *testing.T) {
	tests := []struct {
		name      string
		responses []model.ResponseRecord
		want      float64
	}{
		{
			name:      "empty history scores zero",
			responses: nil,
			want:      0,
		},
		{
			name: "two of three correct at difficulty two",
			responses: []model.ResponseRecord{
				record(2, true, 1.0),
				record(2, true, 1.0),
				record(2, false, 1.0),
			},
			want: 84.11,
		},
		{
			name:      "ten correct at max difficulty",
			responses: uniformRecords(10, 5, true),
			want:      99.33,
		},
		{
			name:      "ten wrong stays near floor",
			responses: uniformRecords(10, 5, false),
			want:      0.67,
		},
		{
			name: "correct answers on the harder half",
			responses: []model.ResponseRecord{
				record(1, false, 1.0),
				record(2, false, 1.0),
				record(3, true, 1.0),
				record(4, true, 1.0),
			},
			want: 75.40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateCompetenceScore(tt.responses), 0.001)
		})
	}
}

func TestCalculateCompetenceScore_RewardsHarderCorrectAnswers(t *testing.T) {
	// Same accuracy over the same question sequence; correctness concentrated
	// on the hard questions must outscore correctness on the easy ones.
	hardCorrect := []model.ResponseRecord{
		record(1, false, 1.0),
		record(2, false, 1.0),
		record(3, false, 1.0),
		record(4, true, 1.0),
		record(5, true, 1.0),
	}
	easyCorrect := []model.ResponseRecord{
		record(1, true, 1.0),
		record(2, true, 1.0),
		record(3, false, 1.0),
		record(4, false, 1.0),
		record(5, false, 1.0),
	}

	assert.Greater(t, CalculateCompetenceScore(hardCorrect), CalculateCompetenceScore(easyCorrect))
}

func TestCalculateCompetenceScore_QualityScalesCredit(t *testing.T) {
	full := []model.ResponseRecord{
		record(3, true, 1.0),
		record(3, true, 1.0),
		record(3, false, 1.0),
	}
	partial := []model.ResponseRecord{
		record(3, true, 0.5),
		record(3, true, 0.5),
		record(3, false, 1.0),
	}

	assert.Greater(t, CalculateCompetenceScore(full), CalculateCompetenceScore(partial))
}

func TestCalculateCompetenceScore_Bounded(t *testing.T) {
	best := CalculateCompetenceScore(uniformRecords(200, 5, true))
	worst := CalculateCompetenceScore(uniformRecords(200, 5, false))

	assert.Less(t, best, 100.0)
	assert.Greater(t, worst, 0.0)
}

func TestCalculateConfidence(t *testing.T) {
	tests := []struct {
		n    int
		want model.ConfidenceLevel
	}{
		{0, model.ConfidenceLow},
		{4, model.ConfidenceLow},
		{5, model.ConfidenceMedium},
		{19, model.ConfidenceMedium},
		{20, model.ConfidenceHigh},
		{100, model.ConfidenceHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateConfidence(uniformRecords(tt.n, 3, true)), "n=%d", tt.n)
	}
}
