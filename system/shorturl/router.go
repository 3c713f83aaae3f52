package shorturl

import (
	"shortgate/pkg/core/security"
	controller "shortgate/system/shorturl/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterAdminRoutes 注册短域名与短链接管理接口
func RegisterAdminRoutes(m *Module, api fiber.Router, auth *security.Auth) {
	adminController := controller.NewShortURLAdminController(m.internalApp, auth)
	adminController.RegisterRoutes(api)
}

// RegisterRedirectRoutes 注册短链接访问入口，需放在所有路由之后
func RegisterRedirectRoutes(m *Module, root fiber.Router) {
	redirectController := controller.NewRedirectController(m.internalApp)
	redirectController.RegisterRoutes(root)
}
