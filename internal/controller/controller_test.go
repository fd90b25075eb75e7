package controller

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarrelAlex/Alimer/internal/dto"
	"github.com/HarrelAlex/Alimer/internal/service"
)

type stubQuestionService struct {
	questions []dto.MCQItemDTO
	err       error
}

func (s *stubQuestionService) GenerateQuestions(_ context.Context, _ string, _ int) ([]dto.MCQItemDTO, error) {
	return s.questions, s.err
}

func newTestRouter(qSvc service.QuestionService, dSvc service.DocumentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewController(qSvc, nil, nil, dSvc).RegisterRoutes(router)
	return router
}

func TestGenerateQuizHandler_FailureReturns500(t *testing.T) {
	router := newTestRouter(&stubQuestionService{err: errors.New("no valid questions in model response")}, nil)

	body := strings.NewReader(`{"topic": "geometry", "num_questions": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/generate", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to generate questions")
}

func TestGenerateQuizHandler_RejectsMissingTopic(t *testing.T) {
	router := newTestRouter(&stubQuestionService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quiz/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartUpload(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("not a real pdf"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestExtractTextHandler_ReadsPdfFormField(t *testing.T) {
	router := newTestRouter(nil, nil)

	// The upload arrives under "pdf" but with a non-PDF name, so reaching the
	// extension check proves the field was read.
	body, contentType := multipartUpload(t, "pdf", "notes.txt")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/extract-text", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only PDF files are supported")
}

func TestExtractTextHandler_RejectsWrongFormField(t *testing.T) {
	router := newTestRouter(nil, nil)

	body, contentType := multipartUpload(t, "file", "notes.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/extract-text", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
}
