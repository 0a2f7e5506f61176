package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// AccessLog tags every request with an id and logs method, path, status
// and latency after the handler chain runs.
func AccessLog(logger *log.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		reqID := c.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDHeader, reqID)

		start := time.Now()
		err := c.Next()

		if logger != nil {
			logger.Printf("http | id=%s method=%s path=%s status=%d dur=%s",
				reqID, c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start).Round(time.Millisecond))
		}
		return err
	}
}
