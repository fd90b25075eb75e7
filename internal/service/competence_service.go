package service

import (
	"fmt"
	"math"
	"time"

	"github.com/HarrelAlex/Alimer/internal/dto"
	"github.com/HarrelAlex/Alimer/internal/model"
	"github.com/HarrelAlex/Alimer/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// CompetenceService evaluates graded quiz responses into a competence score
// and, for identified students, maintains the per-topic response history.
type CompetenceService interface {
	Evaluate(req dto.EvaluateCompetenceRequest) (*dto.CompetenceResponse, error)
	GetStudentCompetences(userID string) (*dto.StudentCompetenceResponse, error)
	GetTopicCompetence(userID, topic string) (*dto.TopicCompetenceDetailResponse, error)
}

type competenceService struct {
	studentRepo    repository.StudentRepository
	competenceRepo repository.CompetenceRepository
}

func NewCompetenceService(studentRepo repository.StudentRepository, competenceRepo repository.CompetenceRepository) CompetenceService {
	return &competenceService{studentRepo: studentRepo, competenceRepo: competenceRepo}
}

// Evaluate scores a batch of responses. Anonymous requests are scored over
// the submitted batch only; requests carrying a user ID append the batch to
// that student's topic history and recompute over the full history.
func (s *competenceService) Evaluate(req dto.EvaluateCompetenceRequest) (*dto.CompetenceResponse, error) {
	if req.Topic == "" || len(req.Responses) == 0 {
		return nil, fmt.Errorf("topic and responses are required")
	}

	records := make([]model.ResponseRecord, 0, len(req.Responses))
	for _, r := range req.Responses {
		records = append(records, toResponseRecord(r))
	}

	scored := records
	if req.UserID != "" {
		persisted, err := s.appendAndRecompute(req.UserID, req.Topic, records)
		if err != nil {
			return nil, err
		}
		scored = persisted
	}

	score := CalculateCompetenceScore(scored)
	confidence := CalculateConfidence(scored)

	correct := 0
	for _, r := range scored {
		if r.IsCorrect {
			correct++
		}
	}

	return &dto.CompetenceResponse{
		Topic:           req.Topic,
		CompetenceScore: score,
		NormalizedScore: roundTo2(score / 10),
		ConfidenceLevel: string(confidence),
		TotalQuestions:  len(scored),
		CorrectAnswers:  correct,
	}, nil
}

// appendAndRecompute stores the new records and refreshes the cached score
// over the full stored history, returning that history.
func (s *competenceService) appendAndRecompute(userID, topic string, records []model.ResponseRecord) ([]model.ResponseRecord, error) {
	student, err := s.studentRepo.FindOrCreateByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student %s: %w", userID, err)
	}

	competence, err := s.competenceRepo.FindOrCreate(student.ID, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to load competence for topic %s: %w", topic, err)
	}

	if err := s.competenceRepo.AppendResponses(competence.ID, records); err != nil {
		return nil, fmt.Errorf("failed to store responses: %w", err)
	}

	full, err := s.competenceRepo.FindByStudentAndTopicWithResponses(student.ID, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to reload response history: %w", err)
	}

	full.Score = CalculateCompetenceScore(full.Responses)
	full.Confidence = CalculateConfidence(full.Responses)
	full.LastUpdated = time.Now()
	if err := s.competenceRepo.Update(full); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("userID", userID).
			Msg("Failed to persist recomputed competence score")
		return nil, fmt.Errorf("failed to update competence score: %w", err)
	}

	return full.Responses, nil
}

func (s *competenceService) GetStudentCompetences(userID string) (*dto.StudentCompetenceResponse, error) {
	student, err := s.studentRepo.FindByUserIDWithCompetences(userID)
	if err != nil {
		return nil, fmt.Errorf("student %s not found: %w", userID, err)
	}

	topics := make([]dto.TopicCompetenceSummaryDTO, 0, len(student.Competences))
	for _, c := range student.Competences {
		count, err := s.competenceRepo.CountResponses(c.ID)
		if err != nil {
			log.Warn().Err(err).Str("topic", c.Topic).Msg("Failed to count responses for topic")
		}
		topics = append(topics, dto.TopicCompetenceSummaryDTO{
			Topic:          c.Topic,
			Score:          c.Score,
			Confidence:     string(c.Confidence),
			TotalResponses: int(count),
			LastUpdated:    c.LastUpdated,
		})
	}

	return &dto.StudentCompetenceResponse{UserID: userID, Topics: topics}, nil
}

func (s *competenceService) GetTopicCompetence(userID, topic string) (*dto.TopicCompetenceDetailResponse, error) {
	student, err := s.studentRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("student %s not found: %w", userID, err)
	}

	competence, err := s.competenceRepo.FindByStudentAndTopicWithResponses(student.ID, topic)
	if err != nil {
		return nil, fmt.Errorf("no competence recorded for topic %s: %w", topic, err)
	}

	resp := &dto.TopicCompetenceDetailResponse{
		UserID:      userID,
		Topic:       competence.Topic,
		Score:       competence.Score,
		Confidence:  string(competence.Confidence),
		LastUpdated: competence.LastUpdated,
	}
	resp.Responses = make([]dto.ResponseRecordDTO, len(competence.Responses))
	for i, r := range competence.Responses {
		if err := copier.Copy(&resp.Responses[i], &r); err != nil {
			log.Warn().Err(err).Msg("Failed to copy response record to DTO")
		}
		resp.Responses[i].Difficulty = int(r.Difficulty)
	}
	return resp, nil
}

// toResponseRecord coerces an incoming response into a valid record:
// out-of-range difficulty defaults to Easy, missing or out-of-range quality
// to 1.0 (binary grading).
func toResponseRecord(r dto.ResponseDTO) model.ResponseRecord {
	difficulty := model.DifficultyLevel(r.Difficulty)
	if !difficulty.IsValid() {
		difficulty = model.Easy
	}
	quality := 1.0
	if r.QualityScore != nil && *r.QualityScore >= 0 && *r.QualityScore <= 1 {
		quality = *r.QualityScore
	}
	questionID := r.QuestionID
	if questionID == "" {
		questionID = uuid.NewString()
	}
	return model.ResponseRecord{
		QuestionID:   questionID,
		Difficulty:   difficulty,
		IsCorrect:    r.IsCorrect,
		QualityScore: quality,
		Timestamp:    time.Now(),
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
