package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/HarrelAlex/Alimer/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const generativeModelName = "gemini-1.5-flash"

// GenerateOptions are the sampling controls for a single generation call.
type GenerateOptions struct {
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

// LLMService is the text-generation collaborator. Callers must treat any
// returned error as a collaborator failure and degrade gracefully; raw
// responses may be wrapped in Markdown code fences.
type LLMService interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, opts GenerateOptions) (string, error)
}

type geminiLLMService struct {
	client *genai.Client
	cfg    *config.Config
}

// NewGeminiClient builds the shared Gemini client. A missing API key yields a
// nil client rather than an error so the rest of the app can start; dependent
// services report unavailability per call.
func NewGeminiClient(cfg *config.Config) (*genai.Client, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. LLM-backed services will be non-functional.")
		return nil, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return client, nil
}

func NewGeminiLLMService(client *genai.Client, cfg *config.Config) LLMService {
	return &geminiLLMService{client: client, cfg: cfg}
}

func (s *geminiLLMService) Generate(ctx context.Context, systemPrompt, userPrompt string, opts GenerateOptions) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	model := s.client.GenerativeModel(generativeModelName)
	model.SetTemperature(opts.Temperature)
	model.SetTopP(opts.TopP)
	if opts.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(opts.MaxOutputTokens)
	}
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error")
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			builder.WriteString(string(txt))
		}
	}
	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return text, nil
}

// stripCodeFences removes a Markdown code-fence wrapper (``` or ```json)
// around a model response so it can be parsed as JSON.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	start := 3
	if idx := strings.Index(content[start:], "\n"); idx != -1 {
		start += idx + 1
	}
	if end := strings.Index(content[start:], "```"); end != -1 {
		content = content[start : start+end]
	} else {
		content = content[start:]
	}
	return strings.TrimSpace(content)
}
