package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError turns an error coming out of a service call (usually a
// *fiber.Error) into the consistent JSON envelope via helper.Error.
// Anything else falls back to 500 without leaking internals.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, "Internal Server Error")
}
