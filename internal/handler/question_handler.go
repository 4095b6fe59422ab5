package handler

import (
	"interview-prep/internal/dto"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles the question bank and single-answer practice.
type QuestionHandler struct {
	questions service.QuestionService
	evaluator service.AnswerEvaluationService
	binder    *middleware.RequestBinder
}

func NewQuestionHandler(questions service.QuestionService, evaluator service.AnswerEvaluationService, binder *middleware.RequestBinder) *QuestionHandler {
	return &QuestionHandler{questions: questions, evaluator: evaluator, binder: binder}
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns every question, newest first
// @Tags questions
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	questions, err := h.questions.ListQuestions(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// GetQuestion godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := middleware.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	q, err := h.questions.GetQuestion(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(q)
}

// CreateQuestion godoc
// @Summary Register a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := h.binder.BindJSON(c, &req); err != nil {
		return err
	}
	q, err := h.questions.CreateQuestion(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(q)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body dto.CreateQuestionRequest true "Question"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	id, err := middleware.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateQuestionRequest
	if err := h.binder.BindJSON(c, &req); err != nil {
		return err
	}
	q, err := h.questions.UpdateQuestion(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(q)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := middleware.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.questions.DeleteQuestion(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// EvaluateAnswer godoc
// @Summary Evaluate one answer
// @Description Scores an answer (text or audio) against the model answer and records it in the QA history
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.EvaluateAnswerRequest true "Answer"
// @Success 200 {object} dto.EvaluateAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions/evaluate [post]
func (h *QuestionHandler) EvaluateAnswer(c *fiber.Ctx) error {
	var req dto.EvaluateAnswerRequest
	if err := h.binder.BindJSON(c, &req); err != nil {
		return err
	}
	result, err := h.evaluator.Evaluate(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ListHistory godoc
// @Summary QA history of a question
// @Tags questions
// @Produce json
// @Param questionId path int true "Question ID"
// @Success 200 {array} dto.QAHistoryResponse
// @Router /questions/history/{questionId} [get]
func (h *QuestionHandler) ListHistory(c *fiber.Ctx) error {
	id, err := middleware.ParseIDParam(c, "questionId")
	if err != nil {
		return err
	}
	items, err := h.questions.ListHistory(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(items)
}
