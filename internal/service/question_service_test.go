package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarrelAlex/Alimer/config"
)

func quizConfig() *config.Config {
	return &config.Config{Quiz: config.Quiz{DefaultQuestions: 5}}
}

func TestGenerateQuestions_ParsesFencedResponse(t *testing.T) {
	mock := NewMockLLMService("```json\n[\n  {\"question\": \"What is 2+2?\", \"options\": [\"3\", \"4\", \"5\", \"6\"], \"correct_option\": 2, \"difficulty\": 1},\n  {\"question\": \"What is a derivative?\", \"options\": [\"A rate of change\", \"A sum\", \"A product\", \"A limit\"], \"correct_option\": 1, \"difficulty\": 3}\n]\n```")
	svc := NewQuestionService(mock, quizConfig())

	questions, err := svc.GenerateQuestions(context.Background(), "mathematics", 2)

	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "What is 2+2?", questions[0].Question)
	assert.Equal(t, []string{"3", "4", "5", "6"}, questions[0].Options)
	assert.Equal(t, 2, questions[0].CorrectOption)
	assert.Equal(t, 1, questions[0].Difficulty)
	assert.NotEmpty(t, questions[0].ID)
	assert.NotEqual(t, questions[0].ID, questions[1].ID)
}

func TestGenerateQuestions_DefaultsQuestionCount(t *testing.T) {
	mock := NewMockLLMService(`[{"question": "Q", "options": ["a", "b", "c", "d"], "correct_option": 1, "difficulty": 2}]`)
	svc := NewQuestionService(mock, quizConfig())

	_, err := svc.GenerateQuestions(context.Background(), "biology", 0)

	require.NoError(t, err)
	assert.Contains(t, mock.LastPrompt, "Generate 5 multiple-choice questions")
}

func TestGenerateQuestions_RequiresTopic(t *testing.T) {
	mock := NewMockLLMService("[]")
	svc := NewQuestionService(mock, quizConfig())

	_, err := svc.GenerateQuestions(context.Background(), "   ", 3)

	assert.Error(t, err)
	assert.Equal(t, 0, mock.Calls)
}

func TestGenerateQuestions_PropagatesGenerationFailure(t *testing.T) {
	mock := &MockLLMService{Err: errors.New("model unavailable")}
	svc := NewQuestionService(mock, quizConfig())

	_, err := svc.GenerateQuestions(context.Background(), "history", 3)
	assert.Error(t, err)
}

func TestGenerateQuestions_EmptyArrayIsFailure(t *testing.T) {
	mock := NewMockLLMService("[]")
	svc := NewQuestionService(mock, quizConfig())

	questions, err := svc.GenerateQuestions(context.Background(), "geometry", 3)

	assert.Error(t, err)
	assert.Empty(t, questions)
}

func TestGenerateQuestions_AllItemsDroppedIsFailure(t *testing.T) {
	// Every item fails the 4-option rule; the survivors list is empty and the
	// caller must see a failure, not a zero-question quiz.
	mock := NewMockLLMService(`[
		{"question": "Q1", "options": ["a", "b", "c"], "correct_option": 1, "difficulty": 2},
		{"question": "Q2", "options": ["a", "b"], "correct_option": 1, "difficulty": 2}
	]`)
	svc := NewQuestionService(mock, quizConfig())

	questions, err := svc.GenerateQuestions(context.Background(), "geometry", 2)

	assert.Error(t, err)
	assert.Empty(t, questions)
}

func TestParseMCQResponse_RepairsOutOfRangeFields(t *testing.T) {
	content := `[
		{"question": "Q1", "options": ["a", "b", "c", "d"], "correct_option": 7, "difficulty": 3},
		{"question": "Q2", "options": ["a", "b", "c", "d"], "correct_option": 2, "difficulty": 0}
	]`

	questions, err := parseMCQResponse(content)

	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].CorrectOption, "out-of-range correct_option resets to 1")
	assert.Equal(t, 2, questions[1].Difficulty, "out-of-range difficulty resets to 2")
}

func TestParseMCQResponse_DropsMalformedOptionLists(t *testing.T) {
	content := `[
		{"question": "Q1", "options": ["a", "b", "c"], "correct_option": 1, "difficulty": 2},
		{"question": "Q2", "options": ["a", "b", "c", "d", "e"], "correct_option": 1, "difficulty": 2},
		{"question": "Q3", "options": ["a", "b", "c", "d"], "correct_option": 4, "difficulty": 5}
	]`

	questions, err := parseMCQResponse(content)

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Q3", questions[0].Question)
}

func TestParseMCQResponse_ExtractsArrayFromProse(t *testing.T) {
	content := `Here are your questions:
[{"question": "Q", "options": ["a", "b", "c", "d"], "correct_option": 3, "difficulty": 4}]
Let me know if you need more.`

	questions, err := parseMCQResponse(content)

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 3, questions[0].CorrectOption)
}

func TestParseMCQResponse_RejectsNonJSON(t *testing.T) {
	_, err := parseMCQResponse("I cannot generate questions about that topic.")
	assert.Error(t, err)
}
