package dto

// SSE event types
const (
	EventStart     = "start"
	EventProgress  = "progress"
	EventChunk     = "chunk"
	EventKeepalive = "keepalive"
	EventComplete  = "complete"
	EventError     = "error"
)

// StreamEvent is the JSON payload of one server-sent event.
// Only the fields relevant to Type are set.
type StreamEvent struct {
	Type          string `json:"type"`
	Message       string `json:"message,omitempty"`
	Step          string `json:"step,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
	Content       string `json:"content,omitempty"`
	ChunkIndex    int    `json:"chunkIndex,omitempty"`
	CurrentLength int    `json:"currentLength,omitempty"`
	TotalChunks   *int   `json:"totalChunks,omitempty"`
	TotalLength   *int   `json:"totalLength,omitempty"`
	Elapsed       int    `json:"elapsed,omitempty"`
	Count         *int   `json:"count,omitempty"`
	Data          any    `json:"data,omitempty"`
	EvaluationID  int64  `json:"evaluationId,omitempty"`
	Evaluation    any    `json:"evaluation,omitempty"`
	Error         string `json:"error,omitempty"`
	RawResponse   string `json:"rawResponse,omitempty"`
}

// IntPtr is a helper for the optional counters of StreamEvent.
func IntPtr(v int) *int {
	return &v
}
