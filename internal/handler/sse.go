package handler

import (
	"bufio"
	"context"

	"interview-prep/internal/stream"

	"github.com/gofiber/fiber/v2"
)

// streamEvents commits SSE headers and runs produce once the body writer is ready.
// produce gets a detached context: the work finishes even if the client leaves.
func streamEvents(c *fiber.Ctx, named bool, produce func(ctx context.Context, emit stream.Emitter)) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		produce(context.Background(), stream.NewSSEWriter(w, named))
	})
	return nil
}
