package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"trip-planner/logger"
	"trip-planner/types"
)

// RequestLogger captures every request/response pair and hands it to the
// async logger, keeping the write off the request path.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		asyncLogger.Log(types.LogEntry{
			Method:          c.Method(),
			URL:             c.OriginalURL(),
			RequestBody:     string(c.Body()),
			ResponseBody:    string(c.Response().Body()),
			RequestHeaders:  fmt.Sprint(c.GetReqHeaders()),
			ResponseHeaders: fmt.Sprint(c.GetRespHeaders()),
			StatusCode:      c.Response().StatusCode(),
			CreatedAt:       time.Now(),
		})

		return err
	}
}
