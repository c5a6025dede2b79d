package handler

import (
	"github.com/gofiber/fiber/v2"

	"quiz-scribe/internal/middleware"
)

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, quiz *QuizGenerationHandler, health *HealthHandler, vm *middleware.ValidationMiddleware) {
	api := app.Group("/api")

	api.Get("/health", health.Health)
	api.Post("/quizzes/generate", vm.ValidateGenerateQuizRequest(), quiz.GenerateQuiz)
	api.Post("/generate-transcript", quiz.GenerateTranscript)
	api.Get("/generation-runs", vm.ValidateRunsLimit(), quiz.ListGenerationRuns)
}
