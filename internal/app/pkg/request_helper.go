package pkg

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safatanc/admin-console/internal/app/errors"
)

// ParseJSON decodes the request body as JSON whatever its declared
// content type; browser fetch calls often send JSON as text/plain.
func ParseJSON(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return errors.NewBadRequestError("Invalid request body")
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return errors.NewBadRequestError("Invalid request body")
	}
	return nil
}
