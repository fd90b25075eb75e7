package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/HarrelAlex/Alimer/internal/dto"
	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

const (
	answerSystemPrompt = "You are a helpful assistant that answers questions based strictly on the provided context " +
		"in a detailed summary. If the information is not in the context, say you do not know."

	chunkSizeWords  = 500
	chunkOverlap    = 100
	retrievalTopK   = 5
	noContextAnswer = "I couldn't find any relevant information in the document."
)

// TextChunk is a retrieval unit of document text tagged with its source page.
type TextChunk struct {
	Page int
	Text string
}

// DocumentService handles PDF ingestion, summarization and retrieval-grounded
// question answering over extracted text.
type DocumentService interface {
	ExtractPDF(reader io.ReaderAt, size int64) ([]dto.PageTextDTO, error)
	Summarize(ctx context.Context, pages []dto.PageTextDTO) (string, error)
	Answer(ctx context.Context, query string, pages []dto.PageTextDTO) (string, error)
}

type documentService struct {
	llm      LLMService
	embedder EmbeddingService
}

func NewDocumentService(llm LLMService, embedder EmbeddingService) DocumentService {
	return &documentService{llm: llm, embedder: embedder}
}

// ExtractPDF reads per-page plain text; pages with no extractable text are
// omitted.
func (s *documentService) ExtractPDF(reader io.ReaderAt, size int64) ([]dto.PageTextDTO, error) {
	r, err := pdf.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	var pages []dto.PageTextDTO
	totalPages := r.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Int("page", pageNum).Msg("Failed to extract text from page")
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, dto.PageTextDTO{Page: pageNum, Text: text})
	}
	return pages, nil
}

func (s *documentService) Summarize(ctx context.Context, pages []dto.PageTextDTO) (string, error) {
	var builder bytes.Buffer
	for i, p := range pages {
		if i > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(p.Text)
	}

	prompt := fmt.Sprintf("Summarize the following text:\n%s", builder.String())
	summary, err := s.llm.Generate(ctx, answerSystemPrompt, prompt, GenerateOptions{
		Temperature:     0.7,
		TopP:            0.9,
		MaxOutputTokens: 512,
	})
	if err != nil {
		return "", fmt.Errorf("summarization failed: %w", err)
	}
	return summary, nil
}

// Answer chunks the pages, ranks chunks by embedding similarity to the query
// and generates a context-grounded answer from the best matches.
func (s *documentService) Answer(ctx context.Context, query string, pages []dto.PageTextDTO) (string, error) {
	chunks := ChunkPages(pages, chunkSizeWords, chunkOverlap)
	relevant, err := s.retrieveRelevant(ctx, query, chunks, retrievalTopK)
	if err != nil {
		return "", err
	}
	if len(relevant) == 0 {
		return noContextAnswer, nil
	}

	contextTexts := make([]string, len(relevant))
	for i, c := range relevant {
		contextTexts[i] = c.Text
	}
	prompt := fmt.Sprintf("Context: %s\nQuestion: %s\nProvide a detailed answer based only on the given context:",
		strings.Join(contextTexts, " "), query)

	answer, err := s.llm.Generate(ctx, answerSystemPrompt, prompt, GenerateOptions{
		Temperature:     0.7,
		TopP:            0.9,
		MaxOutputTokens: 512,
	})
	if err != nil {
		return "", fmt.Errorf("answer generation failed: %w", err)
	}
	return answer, nil
}

func (s *documentService) retrieveRelevant(ctx context.Context, query string, chunks []TextChunk, topK int) ([]TextChunk, error) {
	if len(chunks) == 0 {
		return nil, nil
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	chunkVecs, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed chunks: %w", err)
	}

	indices := TopKSimilar(queryVec, chunkVecs, topK)
	relevant := make([]TextChunk, 0, len(indices))
	for _, idx := range indices {
		relevant = append(relevant, chunks[idx])
	}
	return relevant, nil
}

// ChunkPages splits page text into overlapping word-window chunks that keep
// their page tags.
func ChunkPages(pages []dto.PageTextDTO, chunkSize, overlap int) []TextChunk {
	if chunkSize <= 0 {
		chunkSize = chunkSizeWords
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = chunkOverlap % chunkSize
	}

	var chunks []TextChunk
	step := chunkSize - overlap
	for _, page := range pages {
		words := strings.Fields(page.Text)
		for i := 0; i < len(words); i += step {
			end := i + chunkSize
			if end > len(words) {
				end = len(words)
			}
			chunks = append(chunks, TextChunk{
				Page: page.Page,
				Text: strings.Join(words[i:end], " "),
			})
			if end >= len(words) {
				break
			}
		}
	}
	return chunks
}

// WordCount counts whitespace-separated words; used for the summary length
// reported by the extract endpoint.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
