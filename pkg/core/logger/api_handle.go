package logger

import (
	"strings"
	"time"

	"shortgate/pkg/core/consts"
	errorc "shortgate/pkg/core/err"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	Logger *Log
	// EntryName 日志分组名，默认 API
	EntryName string
}

// NewApiLogger 请求日志中间件，错误会带完整错误链落日志
func NewApiLogger(config Config) fiber.Handler {
	entryName := config.EntryName
	if entryName == "" {
		entryName = "API"
	}
	log := config.Logger.WithEntryName(entryName)

	return func(c *fiber.Ctx) error {
		path := strings.SplitN(c.OriginalURL(), "?", 2)[0]
		start := time.Now()

		err := c.Next()

		entry := log.WithField("latency", time.Since(start).Round(time.Millisecond)).
			WithField("method", c.Method()).
			WithField("path", path).
			WithField("TraceId", c.Locals(consts.TraceKey)).
			WithUserID(c.Locals("user_id"))

		if err != nil {
			errc := errorc.ParseError(err)
			errc.ToLog(entry.WithTrace(c.UserContext()).GetLogger())
			entry.WithField("Err", errc.RootCause()).Debug("请求处理失败")
			return err
		}

		entry.WithField("status", c.Response().StatusCode()).Debug("请求处理完毕")
		return nil
	}
}
