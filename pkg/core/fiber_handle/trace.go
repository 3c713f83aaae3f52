package fiber_handle

import (
	"strings"

	"shortgate/pkg/core/consts"
	"shortgate/pkg/core/tracer"

	"github.com/gofiber/fiber/v2"
)

type TracerConfig struct {
	Tracer  tracer.Tracer
	AppName string
}

// NewApiTracer 为每个请求开启追踪；带上游追踪头时沿用父追踪
func NewApiTracer(config TracerConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimPrefix(strings.SplitN(c.OriginalURL(), "?", 2)[0], "/")
		ctx := c.UserContext()

		var (
			traceID string
			finish  func()
		)
		if parent := c.Get(consts.TraceHeaderName); parent != "" {
			var err error
			ctx, traceID, finish, err = config.Tracer.StartTraceWithParent(ctx, name, parent)
			if err != nil {
				// 父追踪解析失败，创建新的追踪
				ctx, traceID, finish = config.Tracer.StartTrace(c.UserContext(), name)
			}
		} else {
			ctx, traceID, finish = config.Tracer.StartTrace(ctx, name)
		}
		defer finish()

		c.SetUserContext(ctx)
		c.Locals(consts.TraceKey, traceID)
		return c.Next()
	}
}
