package controller

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HarrelAlex/Alimer/internal/dto"
	"github.com/HarrelAlex/Alimer/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	questionSvc   service.QuestionService
	competenceSvc service.CompetenceService
	materialsSvc  service.MaterialsService
	documentSvc   service.DocumentService
}

func NewController(qSvc service.QuestionService, cSvc service.CompetenceService, mSvc service.MaterialsService, dSvc service.DocumentService) *Controller {
	return &Controller{
		questionSvc:   qSvc,
		competenceSvc: cSvc,
		materialsSvc:  mSvc,
		documentSvc:   dSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		quiz := apiV1.Group("/quiz")
		quiz.POST("/generate", ctrl.GenerateQuizHandler)

		competence := apiV1.Group("/competence")
		competence.POST("/evaluate", ctrl.EvaluateCompetenceHandler)

		students := apiV1.Group("/students")
		students.GET("/:user_id/competence", ctrl.GetStudentCompetencesHandler)
		students.GET("/:user_id/competence/:topic", ctrl.GetTopicCompetenceHandler)

		materials := apiV1.Group("/materials")
		materials.POST("/search", ctrl.SearchMaterialsHandler)

		documents := apiV1.Group("/documents")
		documents.POST("/extract-text", ctrl.ExtractTextHandler)
		documents.POST("/query", ctrl.QueryDocumentHandler)
	}
}

// GenerateQuizHandler godoc
// @Summary Generate a multiple-choice quiz
// @Description Generate validated multiple-choice questions for a topic using the LLM
// @Tags quiz
// @Accept json
// @Produce json
// @Param quiz body dto.GenerateQuizRequest true "Topic and optional question count"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Question generation failed"
// @Router /quiz/generate [post]
func (ctrl *Controller) GenerateQuizHandler(c *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GenerateQuizRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	questions, err := ctrl.questionSvc.GenerateQuestions(c.Request.Context(), req.Topic, req.NumQuestions)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Failed to generate questions")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate questions: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.QuizResponse{Topic: req.Topic, Questions: questions})
}

// EvaluateCompetenceHandler godoc
// @Summary Evaluate competence from graded responses
// @Description Score a batch of graded quiz responses; with a user_id the batch is stored and the score covers the full topic history
// @Tags competence
// @Accept json
// @Produce json
// @Param evaluation body dto.EvaluateCompetenceRequest true "Topic, optional user ID and graded responses"
// @Success 200 {object} dto.CompetenceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /competence/evaluate [post]
func (ctrl *Controller) EvaluateCompetenceHandler(c *gin.Context) {
	var req dto.EvaluateCompetenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind EvaluateCompetenceRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.competenceSvc.Evaluate(req)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Failed to evaluate competence")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to evaluate competence: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetStudentCompetencesHandler godoc
// @Summary Get all topic competences for a student
// @Description Retrieve the cached competence estimate of every topic the student has answered questions on
// @Tags competence
// @Produce json
// @Param user_id path string true "Student user ID"
// @Success 200 {object} dto.StudentCompetenceResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{user_id}/competence [get]
func (ctrl *Controller) GetStudentCompetencesHandler(c *gin.Context) {
	userID := c.Param("user_id")

	resp, err := ctrl.competenceSvc.GetStudentCompetences(userID)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("Failed to get student competences")
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Student not found"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTopicCompetenceHandler godoc
// @Summary Get one topic competence with its response history
// @Description Retrieve a student's competence estimate for a topic along with the stored graded responses
// @Tags competence
// @Produce json
// @Param user_id path string true "Student user ID"
// @Param topic path string true "Topic name"
// @Success 200 {object} dto.TopicCompetenceDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Student or topic not found"
// @Router /students/{user_id}/competence/{topic} [get]
func (ctrl *Controller) GetTopicCompetenceHandler(c *gin.Context) {
	userID := c.Param("user_id")
	topic := c.Param("topic")

	resp, err := ctrl.competenceSvc.GetTopicCompetence(userID, topic)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID).Str("topic", topic).Msg("Failed to get topic competence")
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No competence recorded for this student and topic"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchMaterialsHandler godoc
// @Summary Search difficulty-matched learning materials
// @Description Find learning materials whose analyzed complexity matches the complexity level derived from the given competence score
// @Tags materials
// @Accept json
// @Produce json
// @Param search body dto.SearchMaterialsRequest true "Topic, optional competence score, material type filter and result count"
// @Success 200 {object} dto.MaterialsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/search [post]
func (ctrl *Controller) SearchMaterialsHandler(c *gin.Context) {
	var req dto.SearchMaterialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SearchMaterialsRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.materialsSvc.SearchMaterials(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Failed to search materials")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to search materials: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExtractTextHandler godoc
// @Summary Extract text from an uploaded PDF
// @Description Extract per-page plain text from a PDF file and generate a summary of the whole document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF file to extract"
// @Success 200 {object} dto.ExtractTextResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or non-PDF file"
// @Failure 500 {object} dto.ErrorResponse "Extraction failed"
// @Router /documents/extract-text [post]
func (ctrl *Controller) ExtractTextHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No file uploaded"})
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Only PDF files are supported"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	pages, err := ctrl.documentSvc.ExtractPDF(file, fileHeader.Size)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to extract PDF text")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to extract text: " + err.Error()})
		return
	}
	if len(pages) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No extractable text found in the PDF"})
		return
	}

	summary, err := ctrl.documentSvc.Summarize(c.Request.Context(), pages)
	if err != nil {
		// Extraction still succeeded; return the pages without a summary.
		log.Warn().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to summarize document")
		summary = ""
	}

	c.JSON(http.StatusOK, dto.ExtractTextResponse{
		ExtractedText: pages,
		Summary:       summary,
		TextLength:    service.WordCount(summary),
	})
}

// QueryDocumentHandler godoc
// @Summary Answer a question about extracted document text
// @Description Retrieve the most relevant chunks of previously extracted pages and answer the question grounded on them
// @Tags documents
// @Accept json
// @Produce json
// @Param query body dto.QueryDocumentRequest true "Question and previously extracted pages"
// @Success 200 {object} dto.QueryDocumentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Answer generation failed"
// @Router /documents/query [post]
func (ctrl *Controller) QueryDocumentHandler(c *gin.Context) {
	var req dto.QueryDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QueryDocumentRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	answer, err := ctrl.documentSvc.Answer(c.Request.Context(), req.Query, req.ExtractedText)
	if err != nil {
		log.Error().Err(err).Msg("Failed to answer document query")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to answer query: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.QueryDocumentResponse{Answer: answer})
}
