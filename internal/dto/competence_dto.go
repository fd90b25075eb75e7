package dto

import "time"

// ResponseDTO is one graded answer submitted for competence evaluation.
type ResponseDTO struct {
	QuestionID   string   `json:"question_id"`
	Difficulty   int      `json:"difficulty"`
	IsCorrect    bool     `json:"is_correct"`
	QualityScore *float64 `json:"quality_score"` // nil means binary grading (1.0)
}

// EvaluateCompetenceRequest carries a batch of graded responses for one topic.
// UserID is optional; when present the responses are appended to that
// student's history and the score is recomputed over the full history.
type EvaluateCompetenceRequest struct {
	Topic     string        `json:"topic" binding:"required"`
	UserID    string        `json:"user_id"`
	Responses []ResponseDTO `json:"responses" binding:"required,dive"`
}

type CompetenceResponse struct {
	Topic           string  `json:"topic"`
	CompetenceScore float64 `json:"competence_score"`
	NormalizedScore float64 `json:"normalized_score"` // 0-10 scale
	ConfidenceLevel string  `json:"confidence_level"`
	TotalQuestions  int     `json:"total_questions"`
	CorrectAnswers  int     `json:"correct_answers"`
}

// TopicCompetenceSummaryDTO lists one topic's cached estimate for a student.
type TopicCompetenceSummaryDTO struct {
	Topic          string    `json:"topic"`
	Score          float64   `json:"score"`
	Confidence     string    `json:"confidence"`
	TotalResponses int       `json:"total_responses"`
	LastUpdated    time.Time `json:"last_updated"`
}

type StudentCompetenceResponse struct {
	UserID string                      `json:"user_id"`
	Topics []TopicCompetenceSummaryDTO `json:"topics"`
}

// ResponseRecordDTO mirrors a stored response for audit views.
type ResponseRecordDTO struct {
	QuestionID   string    `json:"question_id"`
	Difficulty   int       `json:"difficulty"`
	IsCorrect    bool      `json:"is_correct"`
	QualityScore float64   `json:"quality_score"`
	Timestamp    time.Time `json:"timestamp"`
}

type TopicCompetenceDetailResponse struct {
	UserID      string              `json:"user_id"`
	Topic       string              `json:"topic"`
	Score       float64             `json:"score"`
	Confidence  string              `json:"confidence"`
	LastUpdated time.Time           `json:"last_updated"`
	Responses   []ResponseRecordDTO `json:"responses"`
}
