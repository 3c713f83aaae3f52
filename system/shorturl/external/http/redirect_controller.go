package http

import (
	"strconv"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/util"
	internalapp "shortgate/system/shorturl/internal/app"

	"github.com/gofiber/fiber/v2"
)

const (
	passwordField = "password"
	// errorCodeHeader 错误页附带的业务错误码
	errorCodeHeader = "X-Error-Code"
)

// RedirectController 短链接访问入口（无鉴权）
type RedirectController struct {
	app *internalapp.App
	err *errorc.ErrorBuilder
	log *logger.Log
}

// NewRedirectController 创建短链接访问控制器
func NewRedirectController(app *internalapp.App) *RedirectController {
	return &RedirectController{
		app: app,
		err: errorc.NewErrorBuilder("RedirectController"),
		log: logger.GetLogger().WithEntryName("RedirectController"),
	}
}

// RegisterRoutes 注册路由，需在其他路由之后注册
func (c *RedirectController) RegisterRoutes(router fiber.Router) {
	router.Get("/:code", c.Visit)
	router.Post("/:code", c.Visit)
}

// Visit 解析短链接并输出跳转或页面
func (c *RedirectController) Visit(ctx *fiber.Ctx) error {
	reqCtx := util.Context(ctx)
	outcome, err := c.app.Resolve(reqCtx, internalapp.ResolveRequest{
		Host:     ctx.Hostname(),
		Path:     ctx.Path(),
		Password: passwordProof(ctx),
	})
	if err != nil {
		if errorc.CodeOf(err).IsInternal() {
			errorc.ParseError(err).WithTraceID(reqCtx).ToLog(c.log.GetLogger(), "短链接解析失败")
		}
		return err
	}

	if outcome.State == internalapp.StateRedirect {
		return ctx.Redirect(outcome.Location, outcome.Status)
	}

	if outcome.Code != nil {
		ctx.Set(errorCodeHeader, strconv.Itoa(outcome.Code.Code))
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	ctx.Set(fiber.HeaderCacheControl, "no-store")
	return ctx.Status(outcome.Status).Send(outcome.Body)
}

// passwordProof 读取访问者提交的密码，查询参数与表单字段均可；未提交返回 nil
func passwordProof(ctx *fiber.Ctx) *string {
	req := ctx.Context()
	if req.QueryArgs().Has(passwordField) || req.PostArgs().Has(passwordField) {
		v := ctx.FormValue(passwordField)
		return &v
	}
	if form, err := ctx.MultipartForm(); err == nil {
		if values := form.Value[passwordField]; len(values) > 0 {
			v := values[0]
			return &v
		}
	}
	return nil
}
