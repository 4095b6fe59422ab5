package handler

import (
	"context"
	"fmt"
	"time"

	"interview-prep/internal/dto"
	"interview-prep/internal/export"
	"interview-prep/internal/logger"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"
	"interview-prep/internal/stream"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InterviewHandler handles mock interview sessions.
type InterviewHandler struct {
	interviews  service.InterviewService
	completions service.CompletionService
	binder      *middleware.RequestBinder
}

func NewInterviewHandler(interviews service.InterviewService, completions service.CompletionService, binder *middleware.RequestBinder) *InterviewHandler {
	return &InterviewHandler{interviews: interviews, completions: completions, binder: binder}
}

// CreateSet godoc
// @Summary Start an interview set
// @Description Samples questions 40/30/30 over common, job and foreigner categories
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.CreateSetRequest true "Set options"
// @Success 200 {object} dto.CreateSetResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /interview/sets [post]
func (h *InterviewHandler) CreateSet(c *fiber.Ctx) error {
	var req dto.CreateSetRequest
	if err := h.binder.BindJSON(c, &req); err != nil {
		return err
	}
	resp, err := h.interviews.CreateSet(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListSets godoc
// @Summary List interview sets
// @Tags interview
// @Produce json
// @Success 200 {array} dto.InterviewSetResponse
// @Router /interview/sets [get]
func (h *InterviewHandler) ListSets(c *fiber.Ctx) error {
	sets, err := h.interviews.ListSets(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(sets)
}

// GetSet godoc
// @Summary Interview set detail
// @Description The set, its answers with questions, and the evaluation (null until completed)
// @Tags interview
// @Produce json
// @Param id path int true "Set ID"
// @Success 200 {object} dto.InterviewSetDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /interview/sets/{id} [get]
func (h *InterviewHandler) GetSet(c *fiber.Ctx) error {
	id, err := middleware.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.interviews.GetSetDetail(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// ExportSets godoc
// @Summary Export interview sets
// @Description Excel workbook of every set with its scores and per-question feedback
// @Tags interview
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /interview/sets/export [get]
func (h *InterviewHandler) ExportSets(c *fiber.Ctx) error {
	data, err := h.interviews.ExportSets(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, export.FileName(time.Now())))
	return c.Send(data)
}

// CompleteSet godoc
// @Summary Evaluate an interview set
// @Description Server-sent events: start, progress, chunk..., then complete or error
// @Tags interview
// @Produce text/event-stream
// @Param id path int true "Set ID"
// @Success 200 {object} dto.StreamEvent
// @Router /interview/sets/{id}/complete [post]
func (h *InterviewHandler) CompleteSet(c *fiber.Ctx) error {
	id, err := middleware.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	return streamEvents(c, false, func(ctx context.Context, emit stream.Emitter) {
		logger.Get().Info("Interview completion stream opened", zap.Int64("set_id", id))
		h.completions.Complete(ctx, id, emit)
	})
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Saves one answer and, when enabled, generates a follow-up question
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /interview/answers [post]
func (h *InterviewHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := h.binder.BindJSON(c, &req); err != nil {
		return err
	}
	resp, err := h.interviews.SubmitAnswer(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitFollowUp godoc
// @Summary Answer a follow-up question
// @Tags interview
// @Accept json
// @Produce json
// @Param request body dto.SubmitFollowUpRequest true "Follow-up answer"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /interview/follow-up-answers [post]
func (h *InterviewHandler) SubmitFollowUp(c *fiber.Ctx) error {
	var req dto.SubmitFollowUpRequest
	if err := h.binder.BindJSON(c, &req); err != nil {
		return err
	}
	resp, err := h.interviews.SubmitFollowUp(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
