package dto

// GenerateQuizRequest asks for N multiple-choice questions on a topic.
type GenerateQuizRequest struct {
	Topic        string `json:"topic" binding:"required"`
	NumQuestions int    `json:"num_questions"` // defaults to the configured count when omitted
}

// MCQItemDTO is one validated multiple-choice question. Options always has
// exactly four entries; CorrectOption is 1-based.
type MCQItemDTO struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Difficulty    int      `json:"difficulty"`
}

type QuizResponse struct {
	Topic     string       `json:"topic"`
	Questions []MCQItemDTO `json:"questions"`
}
