package repository

import (
	"github.com/HarrelAlex/Alimer/internal/model"
	"gorm.io/gorm"
)

type CompetenceRepository interface {
	FindOrCreate(studentID uint, topic string) (*model.TopicCompetence, error)
	FindByStudentAndTopic(studentID uint, topic string) (*model.TopicCompetence, error)
	FindByStudentAndTopicWithResponses(studentID uint, topic string) (*model.TopicCompetence, error)
	AppendResponses(competenceID uint, responses []model.ResponseRecord) error
	Update(competence *model.TopicCompetence) error
	CountResponses(competenceID uint) (int64, error)
}

type competenceRepository struct {
	db *gorm.DB
}

func NewCompetenceRepository(db *gorm.DB) CompetenceRepository {
	return &competenceRepository{db: db}
}

func (r *competenceRepository) FindOrCreate(studentID uint, topic string) (*model.TopicCompetence, error) {
	var competence model.TopicCompetence
	err := r.db.Where(model.TopicCompetence{StudentID: studentID, Topic: topic}).
		FirstOrCreate(&competence).Error
	if err != nil {
		return nil, err
	}
	return &competence, nil
}

func (r *competenceRepository) FindByStudentAndTopic(studentID uint, topic string) (*model.TopicCompetence, error) {
	var competence model.TopicCompetence
	err := r.db.Where("student_id = ? AND topic = ?", studentID, topic).
		First(&competence).Error
	if err != nil {
		return nil, err
	}
	return &competence, nil
}

func (r *competenceRepository) FindByStudentAndTopicWithResponses(studentID uint, topic string) (*model.TopicCompetence, error) {
	var competence model.TopicCompetence
	err := r.db.
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("response_records.timestamp ASC")
		}).
		Where("student_id = ? AND topic = ?", studentID, topic).
		First(&competence).Error
	if err != nil {
		return nil, err
	}
	return &competence, nil
}

func (r *competenceRepository) AppendResponses(competenceID uint, responses []model.ResponseRecord) error {
	for i := range responses {
		responses[i].TopicCompetenceID = competenceID
	}
	return r.db.Create(&responses).Error
}

func (r *competenceRepository) Update(competence *model.TopicCompetence) error {
	return r.db.Model(competence).
		Select("score", "confidence", "last_updated").
		Updates(map[string]interface{}{
			"score":        competence.Score,
			"confidence":   competence.Confidence,
			"last_updated": competence.LastUpdated,
		}).Error
}

func (r *competenceRepository) CountResponses(competenceID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ResponseRecord{}).
		Where("topic_competence_id = ?", competenceID).
		Count(&count).Error
	return count, err
}
