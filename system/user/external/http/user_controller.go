package http

import (
	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/result"
	"shortgate/pkg/core/util"
	"shortgate/system/user/api/dto"
	"shortgate/system/user/internal/app"
	"shortgate/utils"

	"github.com/gofiber/fiber/v2"
)

// UserController 登录与当前用户接口
type UserController struct {
	app *app.App
	err *errorc.ErrorBuilder
	log *logger.Log
}

// NewUserController 创建用户控制器实例
func NewUserController(app *app.App) *UserController {
	return &UserController{
		app: app,
		err: errorc.NewErrorBuilder("UserController"),
		log: logger.GetLogger().WithEntryName("UserController"),
	}
}

// RegisterRoutes 注册路由；登录接口不经过鉴权，其 401 不带令牌失效提示
func (ctrl *UserController) RegisterRoutes(api fiber.Router) {
	api.Post("/auth/login", ctrl.Login)

	me := api.Group("/user/me", ctrl.app.Auth().RequireAuth())
	me.Get("", ctrl.Me)
	me.Put("/password", ctrl.ChangePassword)
}

// Login 账号密码登录
func (ctrl *UserController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginReq
	if err := ctx.BodyParser(&req); err != nil {
		return ctrl.err.New("解析请求参数失败", err).ValidWithCtx().WithTraceID(util.Context(ctx)).ToLog(ctrl.log.GetLogger())
	}

	if errMsg, err := utils.Validate(&req); err != nil {
		return ctrl.err.New(errMsg, err).ValidWithCtx().WithTraceID(util.Context(ctx)).ToLog(ctrl.log.GetLogger())
	}

	resp, err := ctrl.app.Login(util.Context(ctx), &req)
	return result.Once(ctx, resp, err)
}

// Me 获取当前登录用户
func (ctrl *UserController) Me(ctx *fiber.Ctx) error {
	user, err := ctrl.app.CurrentUser(util.Context(ctx))
	return result.Once(ctx, user, err)
}

// ChangePassword 修改当前用户密码
func (ctrl *UserController) ChangePassword(ctx *fiber.Ctx) error {
	var req dto.ChangePasswordReq
	if err := ctx.BodyParser(&req); err != nil {
		return ctrl.err.New("解析请求参数失败", err).ValidWithCtx().WithTraceID(util.Context(ctx)).ToLog(ctrl.log.GetLogger())
	}

	if errMsg, err := utils.Validate(&req); err != nil {
		return ctrl.err.New(errMsg, err).ValidWithCtx().WithTraceID(util.Context(ctx)).ToLog(ctrl.log.GetLogger())
	}

	err := ctrl.app.ChangePassword(util.Context(ctx), &req)
	return result.Once(ctx, "修改密码成功", err)
}
