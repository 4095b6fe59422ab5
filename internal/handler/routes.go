package handler

import "github.com/gofiber/fiber/v2"

// Handlers groups every API handler mounted under /api.
type Handlers struct {
	Questions   *QuestionHandler
	Interview   *InterviewHandler
	AnswerNotes *AnswerNoteHandler
	Recruit     *RecruitHandler
}

// RegisterRoutes mounts the API. Static segments go before :id routes.
func RegisterRoutes(api fiber.Router, h Handlers) {
	questions := api.Group("/questions")
	questions.Get("/", h.Questions.ListQuestions)
	questions.Post("/", h.Questions.CreateQuestion)
	questions.Post("/evaluate", h.Questions.EvaluateAnswer)
	questions.Get("/history/:questionId", h.Questions.ListHistory)
	questions.Get("/:id", h.Questions.GetQuestion)
	questions.Put("/:id", h.Questions.UpdateQuestion)
	questions.Delete("/:id", h.Questions.DeleteQuestion)

	interview := api.Group("/interview")
	interview.Post("/sets", h.Interview.CreateSet)
	interview.Get("/sets", h.Interview.ListSets)
	interview.Get("/sets/export", h.Interview.ExportSets)
	interview.Get("/sets/:id", h.Interview.GetSet)
	interview.Post("/sets/:id/complete", h.Interview.CompleteSet)
	interview.Post("/answers", h.Interview.SubmitAnswer)
	interview.Post("/follow-up-answers", h.Interview.SubmitFollowUp)

	notes := api.Group("/answer-notes")
	notes.Get("/", h.AnswerNotes.ListNotes)
	notes.Post("/", h.AnswerNotes.CreateNote)
	notes.Put("/:id", h.AnswerNotes.UpdateNote)
	notes.Delete("/:id", h.AnswerNotes.DeleteNote)

	recruit := api.Group("/auto-recruit")
	recruit.Get("/job-categories", h.Recruit.JobCategories)
	recruit.Post("/register", h.Recruit.Register)
	recruit.Post("/preview-stream", h.Recruit.PreviewStream)
}
