package router

import (
	"shortgate/app"
	"shortgate/base"
	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/fiber_handle"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/security"
	"shortgate/pkg/core/tracer"
	"shortgate/system/shorturl"
	"shortgate/system/template"
	"shortgate/system/user"

	"github.com/gofiber/fiber/v2"
)

// Register 负责集中注册所有 HTTP 路由。
//   - 只依赖 app.App 和 fiber.App。
//   - 短链入口 /:code 会吞掉所有单段路径，必须最后注册。
func Register(a *app.App, f *fiber.App, t tracer.Tracer) {
	api := f.Group("/api", fiber_handle.NewApiTracer(fiber_handle.TracerConfig{
		Tracer:  t,
		AppName: base.Configures.Config.AppName,
	}), logger.NewApiLogger(logger.Config{Logger: base.Logger}))

	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"msg": "ok"})
	})

	// 登录、当前用户
	user.RegisterRoutes(a.UserModule, api)

	// 短域名与短链接管理
	shorturl.RegisterAdminRoutes(a.ShortURLModule, api, base.Auth)

	// 其余 /api 路径一律先校验身份
	RegisterApiFallback(api, base.Auth)

	// 模板资源
	template.RegisterRoutes(a.TemplateModule, f)

	// 管理后台
	cfg := base.Configures.Config.ShortURL
	app.RegisterWebConsole(f, cfg.WebDir, cfg.WebLocation)

	shorturl.RegisterRedirectRoutes(a.ShortURLModule, f)
}

// RegisterApiFallback 挂在 /api 分组末尾：未匹配的路径先要求登录，
// 登录后仍未命中则返回 404，不会落到短链入口。
func RegisterApiFallback(api fiber.Router, auth *security.Auth) {
	api.Use(auth.RequireAuth(), func(c *fiber.Ctx) error {
		return errorc.New("接口不存在", nil).NotFound()
	})
}
