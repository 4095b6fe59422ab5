package util

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ExcerptLength is the number of runes of a raw model response kept in error reports.
const ExcerptLength = 500

var (
	thinkBlockPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)
	fenceOpenPattern  = regexp.MustCompile("^```(?:json|JSON)?\\s*")
	fenceClosePattern = regexp.MustCompile("\\s*```$")
)

// ParseFailure describes a model response that could not be decoded.
type ParseFailure struct {
	Raw     string
	Cleaned string
	Err     error
}

func (f *ParseFailure) Error() string {
	return fmt.Sprintf("failed to parse LLM response as JSON: %v", f.Err)
}

func (f *ParseFailure) Unwrap() error {
	return f.Err
}

// Excerpt returns the start of the raw response, at most ExcerptLength runes.
func (f *ParseFailure) Excerpt() string {
	return Truncate(f.Raw, ExcerptLength)
}

// CleanLLMResponse removes reasoning blocks and the markdown fence wrapping
// the whole response. Backticks inside the payload are left alone.
func CleanLLMResponse(raw string) string {
	cleaned := thinkBlockPattern.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = fenceOpenPattern.ReplaceAllString(cleaned, "")
	cleaned = fenceClosePattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// ParseLLMJSON decodes a model response into T. Code fences and <think>
// blocks are stripped first; when the cleaned text still carries prose around
// the payload, the outermost JSON object or array is tried as a second pass.
// It never panics.
func ParseLLMJSON[T any](raw string) (T, *ParseFailure) {
	var out T
	cleaned := CleanLLMResponse(raw)

	err := json.Unmarshal([]byte(cleaned), &out)
	if err == nil {
		return out, nil
	}

	if extracted, ok := extractJSONPayload(cleaned); ok && extracted != cleaned {
		var retry T
		if json.Unmarshal([]byte(extracted), &retry) == nil {
			return retry, nil
		}
	}

	var zero T
	return zero, &ParseFailure{Raw: raw, Cleaned: cleaned, Err: err}
}

func extractJSONPayload(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return "", false
	}
	closer := "}"
	if s[start] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(s, closer)
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// Truncate shortens s to at most n runes and marks the cut with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
