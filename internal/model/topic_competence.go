package model

import (
	"time"

	"gorm.io/gorm"
)

// TopicCompetence is the latest competence estimate for one (student, topic)
// pair. Score and Confidence are a cache: they are always derivable by
// re-running the calculator over Responses.
type TopicCompetence struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	StudentID   uint             `json:"student_id" gorm:"not null;index;uniqueIndex:idx_student_topic"`
	Topic       string           `json:"topic" gorm:"not null;uniqueIndex:idx_student_topic"`
	Score       float64          `json:"score"`
	Confidence  ConfidenceLevel  `json:"confidence" gorm:"default:'Low'"`
	LastUpdated time.Time        `json:"last_updated"`
	Responses   []ResponseRecord `json:"responses,omitempty" gorm:"foreignKey:TopicCompetenceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}
