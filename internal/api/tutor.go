package api

import (
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/models"
	"github.com/GaurRitika/REALTUTOR-AI-BACKEND/internal/services/tutor"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// TutorHandler serves the synchronous tutoring endpoints.
type TutorHandler struct {
	tutorService *tutor.Service
}

// NewTutorHandler creates a new tutor handler
func NewTutorHandler(tutorService *tutor.Service) *TutorHandler {
	if tutorService == nil {
		panic("NewTutorHandler: tutorService cannot be nil")
	}
	return &TutorHandler{tutorService: tutorService}
}

// Generate answers a bare prompt. Unlike Analyze, a provider failure here
// surfaces as an error status with an error body.
func (h *TutorHandler) Generate(c *fiber.Ctx) error {
	var req models.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON body",
		})
	}

	response, err := h.tutorService.AnswerQuestion(c.UserContext(), "", "", req.Prompt, req.Language)
	if err != nil {
		fiberlog.Errorf("generate: %v", err)
		status := fiber.StatusInternalServerError
		if appErr, ok := err.(*models.AppError); ok {
			status = appErr.GetStatusCode()
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"response": response})
}

// Analyze answers a single-file question or, when projectFilesDetailed is
// present, runs the multi-file project analysis path. Failures still come
// back as a response envelope: the editor client renders whatever message
// arrives, and a dead request would leave it hanging.
func (h *TutorHandler) Analyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		fiberlog.Warnf("analyze: malformed request body: %v", err)
		return c.JSON(models.NewResponseEnvelope("Error analyzing code: invalid JSON body"))
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = "unknown"
	}

	var message string
	if len(req.ProjectFilesDetailed) > 0 {
		fiberlog.Infof("analyze: project analysis over %d files", len(req.ProjectFilesDetailed))
		message, _ = h.tutorService.AnalyzeProject(c.UserContext(), req.ProjectFilesDetailed, req.UserMessage, req.Language)
	} else {
		fiberlog.Infof("analyze: single-file analysis (%s)", fileName)
		message, _ = h.tutorService.AnswerQuestion(c.UserContext(), req.CodeContext, fileName, req.UserMessage, req.Language)
	}

	return c.JSON(models.NewResponseEnvelope(message))
}
