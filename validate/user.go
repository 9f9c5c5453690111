package validate

import (
	"strings"

	"carbon_zero/model"

	"github.com/gofiber/fiber/v2"
)

func CreateUser() fiber.Handler {
	return body(func(input *model.CreateUserInput) error {
		input.Email = strings.ToLower(strings.TrimSpace(input.Email))
		return nil
	})
}

func Login() fiber.Handler {
	return body[model.LoginInput]()
}

// Pagination reads limit and page from the query string.
func Pagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var page model.Pagination
		if err := c.QueryParser(&page); err != nil {
			page = model.Pagination{}
		}
		c.Locals("pagination", page)
		return c.Next()
	}
}
