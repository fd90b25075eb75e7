package dto

// SearchMaterialsRequest asks for learning materials on a topic at a
// difficulty matching the given competence score.
type SearchMaterialsRequest struct {
	Topic           string   `json:"topic" binding:"required"`
	CompetenceScore *float64 `json:"competence_score"` // defaults to 50 when omitted
	MaterialTypes   []string `json:"material_types"`   // empty or ["all"] means no filtering
	NumResults      int      `json:"num_results"`      // defaults to 5
}

// MaterialResultDTO is one accepted learning-material candidate.
type MaterialResultDTO struct {
	URL                  string            `json:"url"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	Author               string            `json:"author"`
	Date                 string            `json:"date"`
	MaterialType         string            `json:"material_type"`
	Complexity           int               `json:"complexity"`
	ComplexityConfidence float64           `json:"complexity_confidence"`
	ComplexityFactors    map[string]string `json:"complexity_factors"`
	PreviewText          string            `json:"preview_text"`
}

type MaterialsResponse struct {
	Topic           string              `json:"topic"`
	CompetenceScore float64             `json:"competence_score"`
	ComplexityLevel int                 `json:"complexity_level"`
	Materials       []MaterialResultDTO `json:"materials"`
}
