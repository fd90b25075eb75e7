package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HarrelAlex/Alimer/config"
	"github.com/HarrelAlex/Alimer/internal/dto"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const questionSystemPrompt = "You are a helpful assistant that generates multiple-choice questions. " +
	"Always provide a valid JSON response with correct_option as an integer index."

// QuestionService generates validated multiple-choice quizzes on a topic via
// the text-generation collaborator.
type QuestionService interface {
	GenerateQuestions(ctx context.Context, topic string, numQuestions int) ([]dto.MCQItemDTO, error)
}

type questionService struct {
	llm LLMService
	cfg *config.Config
}

func NewQuestionService(llm LLMService, cfg *config.Config) QuestionService {
	return &questionService{llm: llm, cfg: cfg}
}

// rawMCQItem is the untrusted shape parsed from the model response. Numeric
// fields use json.Number because models emit them as either numbers or
// strings.
type rawMCQItem struct {
	Question      interface{}   `json:"question"`
	Options       []interface{} `json:"options"`
	CorrectOption json.Number   `json:"correct_option"`
	Difficulty    json.Number   `json:"difficulty"`
}

// GenerateQuestions asks the model for numQuestions 4-option MCQs and returns
// the items that survive validation. A collaborator or parse failure returns
// an error; no retry is attempted here.
func (s *questionService) GenerateQuestions(ctx context.Context, topic string, numQuestions int) ([]dto.MCQItemDTO, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if numQuestions <= 0 {
		numQuestions = s.cfg.Quiz.DefaultQuestions
	}

	prompt := fmt.Sprintf("Generate %d multiple-choice questions (MCQs) on the topic of %s. "+
		"Each question should have 4 options and a correct answer. "+
		"Provide the response as a valid JSON list with fields: 'question', 'options', 'correct_option', and 'difficulty' (1-5). "+
		"The 'correct_option' should be the index (1-4) of the correct answer, not the text of the correct answer.",
		numQuestions, topic)

	content, err := s.llm.Generate(ctx, questionSystemPrompt, prompt, GenerateOptions{
		Temperature:     0.7,
		TopP:            0.9,
		MaxOutputTokens: 1024,
	})
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Question generation failed")
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	items, err := parseMCQResponse(content)
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("Failed to parse generated questions")
		return nil, fmt.Errorf("failed to parse generated questions: %w", err)
	}
	if len(items) == 0 {
		// An empty or fully-dropped batch is a generation failure, not a
		// zero-question quiz.
		log.Warn().Str("topic", topic).Msg("Model returned no usable questions")
		return nil, fmt.Errorf("failed to generate questions: no valid questions in model response")
	}
	return items, nil
}

// parseMCQResponse strips code fences, parses the JSON array and applies the
// repair-or-drop validation policy: out-of-range correct_option resets to 1,
// out-of-range difficulty resets to 2, any item without exactly 4 options is
// dropped.
func parseMCQResponse(content string) ([]dto.MCQItemDTO, error) {
	content = stripCodeFences(content)
	if start := strings.Index(content, "["); start != -1 {
		if end := strings.LastIndex(content, "]"); end > start {
			content = content[start : end+1]
		}
	}

	var raw []rawMCQItem
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid question JSON: %w", err)
	}

	validated := make([]dto.MCQItemDTO, 0, len(raw))
	for _, q := range raw {
		if len(q.Options) != 4 {
			continue
		}
		options := make([]string, len(q.Options))
		for i, opt := range q.Options {
			options[i] = coerceString(opt)
		}

		correct := coerceInt(q.CorrectOption, 1)
		if correct < 1 || correct > 4 {
			correct = 1
		}
		difficulty := coerceInt(q.Difficulty, 2)
		if difficulty < 1 || difficulty > 5 {
			difficulty = 2
		}

		validated = append(validated, dto.MCQItemDTO{
			ID:            uuid.NewString(),
			Question:      coerceString(q.Question),
			Options:       options,
			CorrectOption: correct,
			Difficulty:    difficulty,
		})
	}
	return validated, nil
}

func coerceString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

func coerceInt(n json.Number, fallback int) int {
	if n == "" {
		return fallback
	}
	v, err := n.Int64()
	if err != nil {
		if f, ferr := n.Float64(); ferr == nil {
			return int(f)
		}
		return fallback
	}
	return int(v)
}
