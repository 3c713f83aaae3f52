package app

import (
	"strings"
	"time"

	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/start"

	"github.com/gofiber/fiber/v2"
)

func GetApp(log *logger.Log) *fiber.App {
	return start.GetApp(log)
}

// RegisterWebConsole 把管理后台 SPA 挂到 /<location>/ 下，未命中的前端路由回退到 index.html
func RegisterWebConsole(app fiber.Router, staticPath string, location string) {
	if staticPath == "" {
		return
	}
	location = strings.Trim(location, "/")
	prefix := "/" + location

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(prefix+"/", fiber.StatusFound)
	})
	app.Get(prefix, func(c *fiber.Ctx) error {
		return c.Redirect(prefix+"/", fiber.StatusFound)
	})

	app.Static(prefix, staticPath, fiber.Static{
		Compress:      true,
		ByteRange:     true,
		Browse:        false,
		Index:         "index.html",
		CacheDuration: 10 * time.Minute,
	})

	// 处理SPA路由
	app.Get(prefix+"/*", func(c *fiber.Ctx) error {
		// 静态资源缺失直接 404，不回退
		if isStaticAsset(c.Path()) {
			return fiber.ErrNotFound
		}
		c.Set(fiber.HeaderCacheControl, "no-cache")
		return c.SendFile(staticPath + "/index.html")
	})

	logger.GetLogger().WithField("path", staticPath).WithField("prefix", prefix).Info("已注册管理后台静态文件")
}

func isStaticAsset(path string) bool {
	switch getFileExtension(path) {
	case ".js", ".css", ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico",
		".woff", ".woff2", ".ttf", ".eot", ".map":
		return true
	}
	return false
}

// 辅助函数：获取文件扩展名
func getFileExtension(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i:]
		}
		if path[i] == '/' {
			break
		}
	}
	return ""
}
