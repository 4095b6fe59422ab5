package handler

import (
	"interview-prep/internal/dto"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AnswerNoteHandler struct {
	notes  service.AnswerNoteService
	binder *middleware.RequestBinder
}

func NewAnswerNoteHandler(notes service.AnswerNoteService, binder *middleware.RequestBinder) *AnswerNoteHandler {
	return &AnswerNoteHandler{notes: notes, binder: binder}
}

// ListNotes godoc
// @Summary List answer notes
// @Tags answer-notes
// @Produce json
// @Success 200 {array} dto.AnswerNoteResponse
// @Router /answer-notes [get]
func (h *AnswerNoteHandler) ListNotes(c *fiber.Ctx) error {
	notes, err := h.notes.ListNotes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

// CreateNote godoc
// @Summary Create an answer note
// @Tags answer-notes
// @Accept json
// @Produce json
// @Param request body dto.CreateAnswerNoteRequest true "Note"
// @Success 201 {object} dto.AnswerNoteResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /answer-notes [post]
func (h *AnswerNoteHandler) CreateNote(c *fiber.Ctx) error {
	var req dto.CreateAnswerNoteRequest
	if err := h.binder.BindJSON(c, &req); err != nil {
		return err
	}
	note, err := h.notes.CreateNote(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// UpdateNote godoc
// @Summary Update an answer note
// @Description Omitted fields keep their value
// @Tags answer-notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body dto.UpdateAnswerNoteRequest true "Fields to change"
// @Success 200 {object} dto.AnswerNoteResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /answer-notes/{id} [put]
func (h *AnswerNoteHandler) UpdateNote(c *fiber.Ctx) error {
	id, err := middleware.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateAnswerNoteRequest
	if err := h.binder.BindJSON(c, &req); err != nil {
		return err
	}
	note, err := h.notes.UpdateNote(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(note)
}

// DeleteNote godoc
// @Summary Delete an answer note
// @Tags answer-notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /answer-notes/{id} [delete]
func (h *AnswerNoteHandler) DeleteNote(c *fiber.Ctx) error {
	id, err := middleware.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.notes.DeleteNote(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
