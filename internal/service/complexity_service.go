package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HarrelAlex/Alimer/config"
	"github.com/HarrelAlex/Alimer/internal/model"
	"github.com/rs/zerolog/log"
)

const complexitySystemPrompt = "You are an expert educational content analyst. " +
	"Analyze text to determine its complexity level."

// ComplexityAssessment is the validated result of a complexity analysis.
type ComplexityAssessment struct {
	Level      model.ComplexityLevel
	Confidence float64
	Factors    map[string]string
}

// ComplexityService maps a text sample to a 1-5 complexity estimate. Analysis
// never fails: collaborator errors and malformed responses degrade to a fixed
// intermediate default.
type ComplexityService interface {
	AnalyzeText(ctx context.Context, text string) ComplexityAssessment
}

type complexityService struct {
	llm LLMService
	cfg *config.Config
}

func NewComplexityService(llm LLMService, cfg *config.Config) ComplexityService {
	return &complexityService{llm: llm, cfg: cfg}
}

func (s *complexityService) AnalyzeText(ctx context.Context, text string) ComplexityAssessment {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < s.cfg.Analyzer.MinTextLength {
		// Too little content for a reliable judgment.
		return ComplexityAssessment{
			Level:      model.ComplexityIntermediate,
			Confidence: 0.5,
			Factors: map[string]string{
				"sentence_length":       "0",
				"vocabulary_complexity": "0",
				"concepts_complexity":   "0",
			},
		}
	}

	sample := sampleText(trimmed, s.cfg.Analyzer.SampleBudget)

	prompt := fmt.Sprintf(`Analyze the following educational text and determine its complexity level.

Text sample:
---
%s
---

Rate the complexity on a scale from 1 to 5:
1 - Beginner (elementary knowledge, simple concepts, basic terminology)
2 - Elementary (foundational knowledge, straightforward concepts)
3 - Intermediate (requires some prior knowledge, moderate complexity)
4 - Advanced (complex concepts, specialized knowledge required)
5 - Expert (highly technical, deep domain expertise needed)

Consider factors like:
- Technical vocabulary density
- Concept complexity
- Required prior knowledge
- Abstraction level

Provide a JSON response with:
- complexity_level (integer 1-5)
- confidence (float 0-1)
- factors (object with assessment of key complexity factors)`, sample)

	content, err := s.llm.Generate(ctx, complexitySystemPrompt, prompt, GenerateOptions{
		Temperature:     0.1,
		TopP:            0.9,
		MaxOutputTokens: 512,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Complexity assessment failed, falling back to intermediate default")
		return defaultAssessment()
	}

	assessment, err := parseComplexityResponse(content)
	if err != nil {
		log.Warn().Err(err).Msg("Malformed complexity response, falling back to intermediate default")
		return defaultAssessment()
	}
	return assessment
}

func defaultAssessment() ComplexityAssessment {
	return ComplexityAssessment{
		Level:      model.ComplexityIntermediate,
		Confidence: 0.5,
		Factors: map[string]string{
			"technical_vocabulary": "moderate",
			"concept_complexity":   "moderate",
			"prior_knowledge":      "some required",
		},
	}
}

// parseComplexityResponse validates the collaborator's JSON with explicit
// default-and-clamp rules per field.
func parseComplexityResponse(content string) (ComplexityAssessment, error) {
	content = stripCodeFences(content)
	if start := strings.Index(content, "{"); start != -1 {
		if end := strings.LastIndex(content, "}"); end > start {
			content = content[start : end+1]
		}
	}

	var raw struct {
		ComplexityLevel json.Number `json:"complexity_level"`
		Confidence      json.Number `json:"confidence"`
		Factors         interface{} `json:"factors"`
	}
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return ComplexityAssessment{}, fmt.Errorf("invalid complexity JSON: %w", err)
	}

	level := model.ComplexityLevel(coerceInt(raw.ComplexityLevel, int(model.ComplexityIntermediate)))
	if !level.IsValid() {
		level = model.ComplexityIntermediate
	}

	confidence := 0.7
	if f, err := raw.Confidence.Float64(); err == nil {
		confidence = f
	}
	if confidence < 0 || confidence > 1 {
		confidence = 0.7
	}

	factors := map[string]string{}
	if m, ok := raw.Factors.(map[string]interface{}); ok {
		for k, v := range m {
			factors[k] = coerceString(v)
		}
	}

	return ComplexityAssessment{Level: level, Confidence: confidence, Factors: factors}, nil
}

// sampleText downsamples long text to maxLen characters by joining a leading,
// a centered and a trailing segment; structure cues from the beginning,
// middle and end survive without sending the whole document to the model.
// Segments are cut on rune boundaries.
func sampleText(text string, maxLen int) string {
	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return text
	}
	chunkSize := maxLen / 3
	first := runes[:chunkSize]
	middleStart := len(runes)/2 - chunkSize/2
	middle := runes[middleStart : middleStart+chunkSize]
	last := runes[len(runes)-chunkSize:]
	return fmt.Sprintf("%s...\n\n%s...\n\n%s", string(first), string(middle), string(last))
}
