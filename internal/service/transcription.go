package service

import (
	"context"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
)

// TranscriptionService turns a recorded answer into text.
type TranscriptionService interface {
	// Transcribe uses model, or the configured transcription model when empty.
	Transcribe(ctx context.Context, audio domain.AudioInput, model string) (string, error)
}

type transcriptionService struct {
	transcriber   domain.AudioTranscriber
	defaultModel  string
	fallbackModel string
}

func NewTranscriptionService(transcriber domain.AudioTranscriber, cfg config.LLMConfig) TranscriptionService {
	return &transcriptionService{
		transcriber:   transcriber,
		defaultModel:  cfg.TranscriptionModel,
		fallbackModel: cfg.TranscriptionFallbackModel,
	}
}

// Transcribe retries exactly once with the fallback model when the first model
// fails and is not already the fallback.
func (s *transcriptionService) Transcribe(ctx context.Context, audio domain.AudioInput, model string) (string, error) {
	if model == "" {
		model = s.defaultModel
	}

	text, err := s.transcriber.TranscribeAudio(ctx, audio, model)
	if err == nil {
		return text, nil
	}
	if s.fallbackModel == "" || model == s.fallbackModel {
		return "", err
	}

	logger.Get().Warn("Transcription failed, retrying with fallback model",
		zap.String("model", model),
		zap.String("fallback_model", s.fallbackModel),
		zap.Error(err))
	return s.transcriber.TranscribeAudio(ctx, audio, s.fallbackModel)
}

// resolveAnswerText returns the typed answer, or the transcript when audio was sent.
// The second value is the transcript to echo back ("" for typed answers).
func resolveAnswerText(ctx context.Context, ts TranscriptionService, text string, audio *domain.AudioInput, model string) (string, string, error) {
	if audio == nil {
		return text, "", nil
	}
	transcript, err := ts.Transcribe(ctx, *audio, model)
	if err != nil {
		return "", "", domain.NewLLMServiceError("Failed to transcribe audio", err)
	}
	if transcript == "" {
		return "", "", domain.NewInvalidInputError("No speech was recognized in the audio")
	}
	return transcript, transcript, nil
}
