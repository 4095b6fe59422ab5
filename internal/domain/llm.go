package domain

import "context"

// CompletionRequest is a single, non-streamed chat completion.
type CompletionRequest struct {
	Model       string
	System      string // optional system prompt
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// TextGenerator returns the full text of one chat completion.
type TextGenerator interface {
	Generate(ctx context.Context, req CompletionRequest) (string, error)
}

// FileAttachment is a document sent alongside a prompt as a file content part.
type FileAttachment struct {
	Filename string
	MimeType string
	Base64   string
}

// StreamRequest opens a streamed chat completion.
type StreamRequest struct {
	Model       string
	Prompt      string
	Temperature float64
	MaxTokens   int
	File        *FileAttachment
	// PDFEngine selects the upstream file-parser plugin engine when File is set.
	PDFEngine string
}

// CompletionStream yields text deltas in upstream order.
type CompletionStream interface {
	Next() bool
	// Delta returns the text of the current chunk; it may be empty.
	Delta() string
	Err() error
	Close() error
}

// StreamOpener opens streamed completions. OpenStream returns once the
// upstream has accepted the request and the first bytes can be read.
type StreamOpener interface {
	OpenStream(ctx context.Context, req StreamRequest) (CompletionStream, error)
}

// AudioInput is base64 encoded audio submitted in place of a text answer.
type AudioInput struct {
	Data   string `json:"data" validate:"required"`
	Format string `json:"format" validate:"required"`
}

// AudioTranscriber performs one transcription request against one model.
type AudioTranscriber interface {
	TranscribeAudio(ctx context.Context, audio AudioInput, model string) (string, error)
}
