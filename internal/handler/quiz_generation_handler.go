package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/dto"
	"quiz-scribe/internal/logger"
	"quiz-scribe/internal/middleware"
	"quiz-scribe/internal/service"
	"quiz-scribe/internal/validation"
)

// QuizGenerationHandler handles quiz generation HTTP requests
type QuizGenerationHandler struct {
	service   service.QuizGenerationService
	validator *validation.Validator
}

func NewQuizGenerationHandler(service service.QuizGenerationService, validator *validation.Validator) *QuizGenerationHandler {
	return &QuizGenerationHandler{service: service, validator: validator}
}

// GenerateQuiz godoc
// @Summary Generate a quiz from a transcript
// @Description Strips timestamps, splits sentences and builds up to 50 true/false and multiple-choice items
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Transcript"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/generate [post]
func (h *QuizGenerationHandler) GenerateQuiz(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.LocalsGenerateRequest).(*dto.GenerateQuizRequest)
	if !ok {
		return domain.NewInternalError("validated request missing from context", nil)
	}

	resp, err := h.service.GenerateFromTranscript(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateTranscript godoc
// @Summary Transcribe a video and generate a quiz
// @Description Converts the upload to 16 kHz mono audio, transcribes it and generates a quiz from the transcript
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param video formData file true "Video file"
// @Param quiz_id formData string false "Pre-assigned quiz ID (UUID)"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /generate-transcript [post]
func (h *QuizGenerationHandler) GenerateTranscript(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		return domain.NewInvalidInputError("No video file in request")
	}
	if errs := h.validator.ValidateUpload(fileHeader.Filename, fileHeader.Size); len(errs) > 0 {
		return errs
	}
	quizID := c.FormValue("quiz_id")
	if errs := h.validator.ValidateQuizID(quizID); len(errs) > 0 {
		return errs
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}
	logger.Get().Info("Video upload received",
		zap.String("filename", fileHeader.Filename),
		zap.Int("size", len(data)))

	resp, err := h.service.GenerateFromMedia(c.UserContext(), fileHeader.Filename, data, quizID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListGenerationRuns godoc
// @Summary List recent generation runs
// @Description Returns statistics of the most recent pipeline runs, newest first
// @Tags runs
// @Produce json
// @Param limit query int false "Number of runs (1-100, default 20)"
// @Success 200 {object} dto.GenerationRunsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generation-runs [get]
func (h *QuizGenerationHandler) ListGenerationRuns(c *fiber.Ctx) error {
	limit, ok := c.Locals(middleware.LocalsRunsLimit).(int)
	if !ok {
		limit = validation.DefaultRunsLimit
	}

	runs, err := h.service.ListRecentRuns(c.UserContext(), limit)
	if err != nil {
		return err
	}

	out := dto.GenerationRunsResponse{Runs: make([]dto.GenerationRunResponse, 0, len(runs))}
	for _, run := range runs {
		out.Runs = append(out.Runs, dto.NewGenerationRunResponse(run))
	}
	return c.JSON(out)
}
