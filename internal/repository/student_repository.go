package repository

import (
	"github.com/HarrelAlex/Alimer/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	FindOrCreateByUserID(userID string) (*model.Student, error)
	FindByUserID(userID string) (*model.Student, error)
	FindByUserIDWithCompetences(userID string) (*model.Student, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindOrCreateByUserID(userID string) (*model.Student, error) {
	var student model.Student
	err := r.db.Where(model.Student{UserID: userID}).FirstOrCreate(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByUserID(userID string) (*model.Student, error) {
	var student model.Student
	if err := r.db.Where("user_id = ?", userID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByUserIDWithCompetences(userID string) (*model.Student, error) {
	var student model.Student
	err := r.db.
		Preload("Competences", func(db *gorm.DB) *gorm.DB {
			return db.Order("topic_competences.topic ASC")
		}).
		Where("user_id = ?", userID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}
