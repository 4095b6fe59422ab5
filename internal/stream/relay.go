package stream

import (
	"strings"
	"unicode/utf8"

	"interview-prep/internal/domain"
)

// Forward drains src in order, calling onChunk for every non-empty delta with its
// 1-based index and the accumulated length in characters so far. It returns the full text and
// the number of chunks forwarded. src is closed before returning.
func Forward(src domain.CompletionStream, onChunk func(content string, index, length int)) (string, int, error) {
	defer src.Close()

	var buf strings.Builder
	count, length := 0, 0
	for src.Next() {
		delta := src.Delta()
		if delta == "" {
			continue
		}
		buf.WriteString(delta)
		count++
		length += utf8.RuneCountInString(delta)
		onChunk(delta, count, length)
	}
	return buf.String(), count, src.Err()
}
