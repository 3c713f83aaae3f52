package user

import (
	controller "shortgate/system/user/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册用户组件路由
func RegisterRoutes(m *Module, api fiber.Router) {
	userController := controller.NewUserController(m.internalApp)
	userController.RegisterRoutes(api)
}
