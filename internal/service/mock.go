package service

import "context"

// MockLLMService is a test double for LLMService.
type MockLLMService struct {
	Response   string
	Err        error
	LastSystem string
	LastPrompt string
	LastOpts   GenerateOptions
	Calls      int
}

// NewMockLLMService creates a MockLLMService that returns the given response.
func NewMockLLMService(response string) *MockLLMService {
	return &MockLLMService{Response: response}
}

func (m *MockLLMService) Generate(_ context.Context, systemPrompt, userPrompt string, opts GenerateOptions) (string, error) {
	m.Calls++
	m.LastSystem = systemPrompt
	m.LastPrompt = userPrompt
	m.LastOpts = opts
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// MockEmbeddingService is a test double for EmbeddingService. Vectors returns
// embeddings keyed by input text; unknown texts get the Default vector.
type MockEmbeddingService struct {
	Vectors map[string][]float32
	Default []float32
	Err     error
}

func (m *MockEmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if v, ok := m.Vectors[text]; ok {
		return v, nil
	}
	return m.Default, nil
}

func (m *MockEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := m.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// MockSearchService is a test double for SearchService.
type MockSearchService struct {
	Results   []string
	LastQuery string
}

func (m *MockSearchService) Search(query string, count int) []string {
	m.LastQuery = query
	if count < len(m.Results) {
		return m.Results[:count]
	}
	return m.Results
}

// MockScraperService is a test double for ScraperService. Pages maps URL to
// page HTML; URLs not in the map return FetchErr.
type MockScraperService struct {
	Pages    map[string]string
	Metadata map[string]PageMetadata
	FetchErr error
}

func (m *MockScraperService) FetchPage(_ context.Context, url string) (string, error) {
	if html, ok := m.Pages[url]; ok {
		return html, nil
	}
	if m.FetchErr != nil {
		return "", m.FetchErr
	}
	return "", context.DeadlineExceeded
}

func (m *MockScraperService) ExtractTextContent(html string) string {
	return html
}

func (m *MockScraperService) ExtractMetadata(_, url string) PageMetadata {
	if meta, ok := m.Metadata[url]; ok {
		return meta
	}
	return PageMetadata{Title: "No title", MaterialType: "article"}
}

// MockComplexityService is a test double for ComplexityService. Assessments
// maps analyzed text to its result; unknown texts get the Default assessment.
type MockComplexityService struct {
	Assessments map[string]ComplexityAssessment
	Default     ComplexityAssessment
}

func (m *MockComplexityService) AnalyzeText(_ context.Context, text string) ComplexityAssessment {
	if a, ok := m.Assessments[text]; ok {
		return a
	}
	return m.Default
}
