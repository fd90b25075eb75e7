package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/generative-ai-go/genai"
)

const embeddingModelName = "text-embedding-004"

// EmbeddingService is the embedding/similarity collaborator used to rank text
// chunks by relevance to a query. Encode calls are stateless; one instance is
// shared across requests.
type EmbeddingService interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

type geminiEmbeddingService struct {
	client *genai.Client
}

func NewGeminiEmbeddingService(client *genai.Client) EmbeddingService {
	return &geminiEmbeddingService{client: client}
}

func (s *geminiEmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}
	em := s.client.EmbeddingModel(embeddingModelName)
	res, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	if res.Embedding == nil {
		return nil, fmt.Errorf("embedding response missing values")
	}
	return res.Embedding.Values, nil
}

func (s *geminiEmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}
	em := s.client.EmbeddingModel(embeddingModelName)
	batch := em.NewBatch()
	for _, text := range texts {
		batch = batch.AddContent(genai.Text(text))
	}
	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("batch embedding failed: %w", err)
	}
	if len(res.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(res.Embeddings))
	}
	vectors := make([][]float32, len(res.Embeddings))
	for i, emb := range res.Embeddings {
		vectors[i] = emb.Values
	}
	return vectors, nil
}

// CosineSimilarity returns the cosine of the angle between two vectors, or 0
// for mismatched or zero-length input.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// TopKSimilar ranks candidate vectors by cosine similarity to the query and
// returns the indices of the k best, most similar first.
func TopKSimilar(query []float32, candidates [][]float32, k int) []int {
	if k > len(candidates) {
		k = len(candidates)
	}
	if k <= 0 {
		return nil
	}
	indices := make([]int, len(candidates))
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		indices[i] = i
		scores[i] = CosineSimilarity(query, c)
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return scores[indices[i]] > scores[indices[j]]
	})
	return indices[:k]
}
