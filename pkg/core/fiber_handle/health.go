package fiber_handle

import "github.com/gofiber/fiber/v2"

type HealthCheckConfig struct {
	Path string
}

func HealthCheck(config HealthCheckConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == config.Path && (c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead) {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	}
}
