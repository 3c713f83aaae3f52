package template

import (
	controller "shortgate/system/template/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册模板资源的公开路由
func RegisterRoutes(m *Module, root fiber.Router) {
	assetController := controller.NewAssetController(m.internalApp)
	assetController.RegisterRoutes(root)
}
