package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexityLevelForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  ComplexityLevel
	}{
		{0, ComplexityBeginner},
		{19.99, ComplexityBeginner},
		{20, ComplexityElementary},
		{39.99, ComplexityElementary},
		{40, ComplexityIntermediate},
		{59.99, ComplexityIntermediate},
		{60, ComplexityAdvanced},
		{79.99, ComplexityAdvanced},
		{80, ComplexityExpert},
		{100, ComplexityExpert},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ComplexityLevelForScore(tt.score), "score=%v", tt.score)
	}
}

func TestComplexityLevelIsValid(t *testing.T) {
	assert.False(t, ComplexityLevel(0).IsValid())
	assert.True(t, ComplexityBeginner.IsValid())
	assert.True(t, ComplexityExpert.IsValid())
	assert.False(t, ComplexityLevel(6).IsValid())
}
