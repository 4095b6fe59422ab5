package handler

import (
	"context"

	"interview-prep/internal/dto"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"
	"interview-prep/internal/stream"

	"github.com/gofiber/fiber/v2"
)

// RecruitHandler handles PDF job-posting analysis and registration.
type RecruitHandler struct {
	recruits service.RecruitService
	binder   *middleware.RequestBinder
}

func NewRecruitHandler(recruits service.RecruitService, binder *middleware.RequestBinder) *RecruitHandler {
	return &RecruitHandler{recruits: recruits, binder: binder}
}

// JobCategories godoc
// @Summary Job categories and roles
// @Tags auto-recruit
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /auto-recruit/job-categories [get]
func (h *RecruitHandler) JobCategories(c *fiber.Ctx) error {
	return c.JSON(h.recruits.JobCategories())
}

// Register godoc
// @Summary Register a job posting
// @Description Forwards one analysed posting to the recruiting API
// @Tags auto-recruit
// @Accept json
// @Produce json
// @Success 200 {object} dto.RegisterRecruitResponse
// @Failure 400 {object} dto.RegisterRecruitResponse
// @Failure 500 {object} dto.RegisterRecruitResponse
// @Router /auto-recruit/register [post]
func (h *RecruitHandler) Register(c *fiber.Ctx) error {
	// fasthttp 버퍼는 재사용되므로 복사해서 넘긴다
	payload := append([]byte(nil), c.Body()...)
	status, resp := h.recruits.Register(c.Context(), payload)
	return c.Status(status).JSON(resp)
}

// PreviewStream godoc
// @Summary Analyse a PDF job posting
// @Description Server-sent events (named): start, progress, keepalive..., chunk..., progress, then complete or error
// @Tags auto-recruit
// @Accept json
// @Produce text/event-stream
// @Param request body dto.AnalyzeRecruitRequest true "PDF and fixed fields"
// @Success 200 {object} dto.StreamEvent
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /auto-recruit/preview-stream [post]
func (h *RecruitHandler) PreviewStream(c *fiber.Ctx) error {
	var req dto.AnalyzeRecruitRequest
	if err := h.binder.BindJSON(c, &req); err != nil {
		return err
	}
	return streamEvents(c, true, func(ctx context.Context, emit stream.Emitter) {
		h.recruits.Preview(ctx, &req, emit)
	})
}
