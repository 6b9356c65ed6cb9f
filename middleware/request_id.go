package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestIDMaxLen caps externally supplied ids to keep them out of
// log-injection territory.
const requestIDMaxLen = 64

// RequestID reads X-Request-ID from the request or generates a UUID,
// stores it in locals and echoes it back on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(requestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Locals("request_id", rid)
		c.Set(requestIDHeader, rid)

		return c.Next()
	}
}
