package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarrelAlex/Alimer/config"
	"github.com/HarrelAlex/Alimer/internal/model"
)

func analyzerConfig() *config.Config {
	return &config.Config{Analyzer: config.Analyzer{SampleBudget: 2000, MinTextLength: 100}}
}

func longText(word string) string {
	return strings.TrimSpace(strings.Repeat(word+" ", 60))
}

func TestAnalyzeText_ShortTextSkipsModel(t *testing.T) {
	mock := NewMockLLMService("{}")
	svc := NewComplexityService(mock, analyzerConfig())

	got := svc.AnalyzeText(context.Background(), "too short")

	assert.Equal(t, model.ComplexityIntermediate, got.Level)
	assert.Equal(t, 0.5, got.Confidence)
	assert.Equal(t, "0", got.Factors["sentence_length"])
	assert.Equal(t, 0, mock.Calls, "short text must not reach the model")
}

func TestAnalyzeText_ParsesAssessment(t *testing.T) {
	mock := NewMockLLMService(`{"complexity_level": 4, "confidence": 0.9, "factors": {"technical_vocabulary": "high", "prior_knowledge": "calculus"}}`)
	svc := NewComplexityService(mock, analyzerConfig())

	got := svc.AnalyzeText(context.Background(), longText("stochastic"))

	assert.Equal(t, model.ComplexityAdvanced, got.Level)
	assert.Equal(t, 0.9, got.Confidence)
	assert.Equal(t, "high", got.Factors["technical_vocabulary"])
	assert.Equal(t, 1, mock.Calls)
}

func TestAnalyzeText_ClampsInvalidFields(t *testing.T) {
	tests := []struct {
		name           string
		response       string
		wantLevel      model.ComplexityLevel
		wantConfidence float64
	}{
		{
			name:           "level above range",
			response:       `{"complexity_level": 9, "confidence": 0.8, "factors": {}}`,
			wantLevel:      model.ComplexityIntermediate,
			wantConfidence: 0.8,
		},
		{
			name:           "level below range",
			response:       `{"complexity_level": 0, "confidence": 0.8, "factors": {}}`,
			wantLevel:      model.ComplexityIntermediate,
			wantConfidence: 0.8,
		},
		{
			name:           "confidence above range",
			response:       `{"complexity_level": 2, "confidence": 1.5, "factors": {}}`,
			wantLevel:      model.ComplexityElementary,
			wantConfidence: 0.7,
		},
		{
			name:           "missing confidence",
			response:       `{"complexity_level": 2, "factors": {}}`,
			wantLevel:      model.ComplexityElementary,
			wantConfidence: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewComplexityService(NewMockLLMService(tt.response), analyzerConfig())
			got := svc.AnalyzeText(context.Background(), longText("word"))
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantConfidence, got.Confidence)
		})
	}
}

func TestAnalyzeText_FallsBackOnModelFailure(t *testing.T) {
	svc := NewComplexityService(&MockLLMService{Err: errors.New("quota exceeded")}, analyzerConfig())

	got := svc.AnalyzeText(context.Background(), longText("word"))

	assert.Equal(t, model.ComplexityIntermediate, got.Level)
	assert.Equal(t, 0.5, got.Confidence)
	assert.Equal(t, "moderate", got.Factors["concept_complexity"])
}

func TestAnalyzeText_FallsBackOnMalformedResponse(t *testing.T) {
	svc := NewComplexityService(NewMockLLMService("the text seems fairly advanced"), analyzerConfig())

	got := svc.AnalyzeText(context.Background(), longText("word"))

	assert.Equal(t, model.ComplexityIntermediate, got.Level)
	assert.Equal(t, 0.5, got.Confidence)
}

func TestSampleText(t *testing.T) {
	short := "brief text"
	assert.Equal(t, short, sampleText(short, 2000))

	long := strings.Repeat("abcdefghij", 300)
	sampled := sampleText(long, 300)

	require.NotEqual(t, long, sampled)
	assert.True(t, strings.HasPrefix(sampled, long[:100]))
	assert.True(t, strings.HasSuffix(sampled, long[len(long)-100:]))
	assert.Contains(t, sampled, "...")
	assert.Less(t, len(sampled), len(long))
}

func TestSampleText_CutsOnRuneBoundaries(t *testing.T) {
	// Three-byte runes make every byte-index cut inside a rune unless the
	// sampler counts characters.
	long := strings.Repeat("数学の複雑な説明", 200)
	sampled := sampleText(long, 99)

	require.NotEqual(t, long, sampled)
	assert.True(t, utf8.ValidString(sampled))
	assert.True(t, strings.HasPrefix(sampled, string([]rune(long)[:33])))
}
