package model

import (
	"time"

	"gorm.io/gorm"
)

// ResponseRecord is one graded quiz-question attempt. Records are append-only:
// once written they are never mutated or deleted within a session.
type ResponseRecord struct {
	ID                uint            `gorm:"primarykey" json:"id"`
	TopicCompetenceID uint            `json:"topic_competence_id" gorm:"not null;index"`
	QuestionID        string          `json:"question_id" gorm:"not null"`
	Difficulty        DifficultyLevel `json:"difficulty" gorm:"not null"`
	IsCorrect         bool            `json:"is_correct"`
	QualityScore      float64         `json:"quality_score" gorm:"default:1.0"`
	Timestamp         time.Time       `json:"timestamp" gorm:"autoCreateTime"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`
}
