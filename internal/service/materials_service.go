package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/HarrelAlex/Alimer/config"
	"github.com/HarrelAlex/Alimer/internal/dto"
	"github.com/HarrelAlex/Alimer/internal/model"
	"github.com/rs/zerolog/log"
)

const previewLength = 500

// complexityKeywords maps each target level to query keywords; the first
// entry of a level's list is used when building the search query.
var complexityKeywords = map[model.ComplexityLevel][]string{
	model.ComplexityBeginner:     {"beginner", "introduction", "basic", "101", "tutorial"},
	model.ComplexityElementary:   {"elementary", "fundamentals", "guide", "primer"},
	model.ComplexityIntermediate: {"intermediate", "guide", "overview"},
	model.ComplexityAdvanced:     {"advanced", "comprehensive", "in-depth"},
	model.ComplexityExpert:       {"expert", "technical", "specialized", "research"},
}

// MaterialsService runs the difficulty-matching loop: competence score to
// target complexity, web search, per-candidate fetch/extract/analyze, and
// acceptance by proximity to the target.
type MaterialsService interface {
	SearchMaterials(ctx context.Context, req dto.SearchMaterialsRequest) (*dto.MaterialsResponse, error)
}

type materialsService struct {
	search     SearchService
	scraper    ScraperService
	complexity ComplexityService
	cfg        *config.Config
}

func NewMaterialsService(search SearchService, scraper ScraperService, complexity ComplexityService, cfg *config.Config) MaterialsService {
	return &materialsService{
		search:     search,
		scraper:    scraper,
		complexity: complexity,
		cfg:        cfg,
	}
}

func (s *materialsService) SearchMaterials(ctx context.Context, req dto.SearchMaterialsRequest) (*dto.MaterialsResponse, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, fmt.Errorf("topic is required")
	}

	competenceScore := 50.0
	if req.CompetenceScore != nil {
		competenceScore = *req.CompetenceScore
	}
	numResults := req.NumResults
	if numResults <= 0 {
		numResults = s.cfg.Materials.DefaultResults
	}

	targetLevel := model.ComplexityLevelForScore(competenceScore)
	materials := s.collectCandidates(ctx, req.Topic, targetLevel, numResults)
	materials = filterByMaterialTypes(materials, req.MaterialTypes)

	if len(materials) > numResults {
		materials = materials[:numResults]
	}

	return &dto.MaterialsResponse{
		Topic:           req.Topic,
		CompetenceScore: competenceScore,
		ComplexityLevel: int(targetLevel),
		Materials:       materials,
	}, nil
}

// collectCandidates walks the candidate URLs sequentially with a pacing delay
// between processed candidates and returns up to numResults accepted
// materials. A failing candidate is skipped, never aborting the batch; too
// few acceptable candidates yields a short list, not an error.
func (s *materialsService) collectCandidates(ctx context.Context, topic string, targetLevel model.ComplexityLevel, numResults int) []dto.MaterialResultDTO {
	keyword := ""
	if terms := complexityKeywords[targetLevel]; len(terms) > 0 {
		keyword = terms[0]
	}
	query := fmt.Sprintf("%s %s tutorial", topic, keyword)

	// Fetch extra candidates since some will fail or miss the target level.
	urls := s.search.Search(query, numResults*2)

	results := make([]dto.MaterialResultDTO, 0, numResults)
	for i, url := range urls {
		if i > 0 {
			if !s.pace(ctx) {
				log.Info().Msg("Materials search cancelled during pacing delay")
				break
			}
		}

		material, ok := s.processCandidate(ctx, url, targetLevel)
		if !ok {
			continue
		}
		results = append(results, material)
		if len(results) >= numResults {
			break
		}
	}
	return results
}

// pace blocks for the configured inter-request delay; it returns false when
// the context is cancelled first.
func (s *materialsService) pace(ctx context.Context) bool {
	delay := s.cfg.Materials.RequestDelay
	if delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *materialsService) processCandidate(ctx context.Context, url string, targetLevel model.ComplexityLevel) (material dto.MaterialResultDTO, ok bool) {
	defer func() {
		// One misbehaving page must not abort the batch.
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("url", url).Msg("Recovered while processing candidate")
			ok = false
		}
	}()

	html, err := s.scraper.FetchPage(ctx, url)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("Skipping candidate: fetch failed")
		return material, false
	}

	text := s.scraper.ExtractTextContent(html)
	if len(strings.TrimSpace(text)) < s.cfg.Analyzer.MinTextLength {
		log.Debug().Str("url", url).Msg("Skipping candidate: too little content")
		return material, false
	}

	meta := s.scraper.ExtractMetadata(html, url)
	assessment := s.complexity.AnalyzeText(ctx, text)

	distance := int(assessment.Level) - int(targetLevel)
	if distance < 0 {
		distance = -distance
	}
	if distance > s.cfg.Materials.ComplexityTolerance {
		log.Debug().Str("url", url).Int("complexity", int(assessment.Level)).
			Int("target", int(targetLevel)).Msg("Skipping candidate: complexity mismatch")
		return material, false
	}

	// Truncate on a rune boundary so multi-byte pages stay valid UTF-8.
	preview := text
	if runes := []rune(text); len(runes) > previewLength {
		preview = string(runes[:previewLength]) + "..."
	}

	return dto.MaterialResultDTO{
		URL:                  url,
		Title:                meta.Title,
		Description:          meta.Description,
		Author:               meta.Author,
		Date:                 meta.Date,
		MaterialType:         string(meta.MaterialType),
		Complexity:           int(assessment.Level),
		ComplexityConfidence: assessment.Confidence,
		ComplexityFactors:    assessment.Factors,
		PreviewText:          preview,
	}, true
}

// filterByMaterialTypes drops materials whose type is not in the requested
// set. An empty set or one containing "all" disables filtering.
func filterByMaterialTypes(materials []dto.MaterialResultDTO, types []string) []dto.MaterialResultDTO {
	if len(types) == 0 {
		return materials
	}
	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		if t == "all" {
			return materials
		}
		wanted[t] = true
	}
	filtered := make([]dto.MaterialResultDTO, 0, len(materials))
	for _, m := range materials {
		if wanted[m.MaterialType] {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
