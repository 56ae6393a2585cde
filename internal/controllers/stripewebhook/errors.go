package stripewebhook

import (
	"errors"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ErrorHandler converts handler errors into the JSON error contract: the
// richerrors status code and external message when present, otherwise 500
// with the error text.
func ErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := err.Error()

		var richErr richerrors.Error
		if errors.As(err, &richErr) {
			if richErr.Code != 0 {
				code = richErr.Code
			}
			if richErr.ExternalMsg != "" {
				msg = richErr.ExternalMsg
			}
		}
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		logger.Error().Err(err).Int("status_code", code).Msg("webhook delivery failed")
		return c.Status(code).JSON(fiber.Map{"error": msg})
	}
}
