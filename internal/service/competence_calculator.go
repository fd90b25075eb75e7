package service

import (
	"math"

	"github.com/HarrelAlex/Alimer/internal/model"
)

// logisticBase matches the constant the scoring model was calibrated with.
// Do not replace with math.E; stored scores must stay reproducible.
const logisticBase = 2.71828

// CalculateCompetenceScore converts an ordered sequence of graded responses
// into a bounded 0-100 skill estimate. The blend weighs raw accuracy against
// difficulty-weighted correctness, with the accuracy weight growing with
// sample size (capped at 0.6 from 20 responses on), then squashes the result
// through a logistic curve centered at 50.
//
// The function is deterministic and recomputes from the full history on every
// call; an empty sequence scores exactly 0.
func CalculateCompetenceScore(responses []model.ResponseRecord) float64 {
	if len(responses) == 0 {
		return 0
	}

	totalQuestions := len(responses)
	correctAnswers := 0
	weightedDifficultyScore := 0.0
	totalDifficulty := 0.0
	for _, r := range responses {
		totalDifficulty += float64(r.Difficulty)
		if r.IsCorrect {
			correctAnswers++
			weightedDifficultyScore += float64(r.Difficulty) * r.QualityScore
		}
	}
	accuracy := float64(correctAnswers) / float64(totalQuestions)

	accuracyWeight := math.Min(0.6, 0.4+float64(totalQuestions)/100)
	difficultyWeight := 1 - accuracyWeight

	rawScore := (accuracy*accuracyWeight + (weightedDifficultyScore/totalDifficulty)*difficultyWeight) * 100
	finalScore := 100 / (1 + math.Pow(logisticBase, -0.1*(rawScore-50)))

	return math.Round(finalScore*100) / 100
}

// CalculateConfidence grades the reliability of a competence score from
// sample size alone: fewer than 5 responses is Low, fewer than 20 Medium,
// anything else High.
func CalculateConfidence(responses []model.ResponseRecord) model.ConfidenceLevel {
	totalQuestions := len(responses)
	if totalQuestions < 5 {
		return model.ConfidenceLow
	}
	if totalQuestions < 20 {
		return model.ConfidenceMedium
	}
	return model.ConfidenceHigh
}
