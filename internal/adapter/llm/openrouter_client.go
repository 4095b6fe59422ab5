package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
	"go.uber.org/zap"
)

const transcriptionInstruction = "아래 오디오를 한국어로 정확히 받아써 주세요. 불필요한 설명 없이 전사 텍스트만 출력하세요."

// OpenRouterClient talks to an OpenAI-compatible chat completion API for the calls
// langchaingo cannot express: streamed output, audio input and PDF file parts.
type OpenRouterClient struct {
	client openai.Client
}

func NewOpenRouterClient(cfg config.LLMConfig) *OpenRouterClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(strings.TrimSuffix(cfg.BaseURL, "/") + "/"),
		// transcription owns the only retry policy
		option.WithMaxRetries(0),
	}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.RequestTimeout))
	}
	return &OpenRouterClient{client: openai.NewClient(opts...)}
}

// OpenStream starts a streamed completion. The HTTP request is issued synchronously,
// so a rejected request is reported here rather than on the first Next.
func (c *OpenRouterClient) OpenStream(ctx context.Context, req domain.StreamRequest) (domain.CompletionStream, error) {
	var message openai.ChatCompletionMessageParamUnion
	var reqOpts []option.RequestOption

	if req.File != nil {
		mimeType := req.File.MimeType
		if mimeType == "" {
			mimeType = "application/pdf"
		}
		message = openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(req.Prompt),
			openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
				Filename: openai.String(req.File.Filename),
				FileData: openai.String(fmt.Sprintf("data:%s;base64,%s", mimeType, req.File.Base64)),
			}),
		})
		if req.PDFEngine != "" {
			reqOpts = append(reqOpts, option.WithJSONSet("plugins", []map[string]any{
				{"id": "file-parser", "pdf": map[string]any{"engine": req.PDFEngine}},
			}))
		}
	} else {
		message = openai.UserMessage(req.Prompt)
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    []openai.ChatCompletionMessageParamUnion{message},
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, params, reqOpts...)
	if err := stream.Err(); err != nil {
		logger.Get().Error("Failed to open completion stream", zap.String("model", req.Model), zap.Error(err))
		_ = stream.Close()
		return nil, fmt.Errorf("failed to open completion stream: %w", err)
	}
	return &chunkStream{stream: stream}, nil
}

// TranscribeAudio sends one input_audio request to model and returns the trimmed text.
func (c *OpenRouterClient) TranscribeAudio(ctx context.Context, audio domain.AudioInput, model string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(transcriptionInstruction),
				openai.InputAudioContentPart(openai.ChatCompletionContentPartInputAudioInputAudioParam{
					Data:   audio.Data,
					Format: audio.Format,
				}),
			}),
		},
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(1500),
	})
	if err != nil {
		return "", fmt.Errorf("transcription with %s failed: %w", model, err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("transcription returned no choices")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

type chunkStream struct {
	stream *ssestream.Stream[openai.ChatCompletionChunk]
}

func (s *chunkStream) Next() bool {
	return s.stream.Next()
}

func (s *chunkStream) Delta() string {
	chunk := s.stream.Current()
	if len(chunk.Choices) == 0 {
		return ""
	}
	return chunk.Choices[0].Delta.Content
}

func (s *chunkStream) Err() error {
	return s.stream.Err()
}

func (s *chunkStream) Close() error {
	return s.stream.Close()
}
