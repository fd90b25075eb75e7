package model

import (
	"time"

	"gorm.io/gorm"
)

// Student is created on first interaction and grows monotonically with new
// topics. There is no deletion path.
type Student struct {
	ID          uint              `gorm:"primarykey" json:"id"`
	UserID      string            `json:"user_id" gorm:"not null;uniqueIndex"`
	Competences []TopicCompetence `json:"competences,omitempty" gorm:"foreignKey:StudentID"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`
}
