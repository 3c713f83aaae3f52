package http

import (
	"strconv"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/mvc"
	"shortgate/pkg/core/result"
	"shortgate/pkg/core/security"
	"shortgate/pkg/core/util"
	"shortgate/system/shorturl/api/dto"
	internalapp "shortgate/system/shorturl/internal/app"
	"shortgate/utils"

	"github.com/gofiber/fiber/v2"
)

// ShortURLAdminController 短域名与短链接管理接口
type ShortURLAdminController struct {
	app  *internalapp.App
	auth *security.Auth
	err  *errorc.ErrorBuilder
	log  *logger.Log
}

// NewShortURLAdminController 创建短网址管理控制器
func NewShortURLAdminController(app *internalapp.App, auth *security.Auth) *ShortURLAdminController {
	return &ShortURLAdminController{
		app:  app,
		auth: auth,
		err:  errorc.NewErrorBuilder("ShortURLAdminController"),
		log:  logger.GetLogger().WithEntryName("ShortURLAdminController"),
	}
}

// RegisterRoutes 注册路由
func (c *ShortURLAdminController) RegisterRoutes(api fiber.Router) {
	// 短域名管理，写操作要求管理员
	domainRouter := api.Group("/domain", c.auth.RequireAuth())
	domainRouter.Get("/list", c.ListDomains)
	domainRouter.Get("/detail/:id", c.GetDomain)
	domainRouter.Post("/create", c.auth.RequireAuth(security.RoleAdmin), c.CreateDomain)
	domainRouter.Put("/update/:id", c.auth.RequireAuth(security.RoleAdmin), c.UpdateDomain)
	domainRouter.Delete("/delete/:id", c.auth.RequireAuth(security.RoleAdmin), c.DeleteDomain)

	// 短链接管理
	linkRouter := api.Group("/link", c.auth.RequireAuth())
	linkRouter.Get("/list", c.ListLinks)
	linkRouter.Get("/detail/:id", c.GetLink)
	linkRouter.Post("/create", c.CreateLink)
	linkRouter.Put("/update/:id", c.UpdateLink)
	linkRouter.Put("/status/:id", c.UpdateLinkStatus)
	linkRouter.Delete("/delete/:id", c.DeleteLink)
}

func (c *ShortURLAdminController) parseID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, c.err.New("ID参数错误", err).ValidWithCtx().WithTraceID(util.Context(ctx))
	}
	return id, nil
}

func (c *ShortURLAdminController) parsePage(ctx *fiber.Ctx) (*mvc.Page, error) {
	var page mvc.Page
	if err := ctx.QueryParser(&page); err != nil {
		return nil, c.err.New("分页参数错误", err).ValidWithCtx().WithTraceID(util.Context(ctx))
	}
	return page.Normalize(), nil
}

// bind 解析并校验请求体
func (c *ShortURLAdminController) bind(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return c.err.New("解析请求参数失败", err).ValidWithCtx().WithTraceID(util.Context(ctx)).ToLog(c.log.GetLogger())
	}
	if errMsg, err := utils.Validate(req); err != nil {
		return c.err.New(errMsg, err).ValidWithCtx().WithTraceID(util.Context(ctx)).ToLog(c.log.GetLogger())
	}
	return nil
}

// ListDomains 查询域名列表
func (c *ShortURLAdminController) ListDomains(ctx *fiber.Ctx) error {
	page, err := c.parsePage(ctx)
	if err != nil {
		return err
	}
	domains, total, err := c.app.ListDomains(util.Context(ctx), page)
	if err != nil {
		return err
	}
	return result.OK(ctx, result.PageData{Total: total, Content: domains})
}

// GetDomain 获取域名详情
func (c *ShortURLAdminController) GetDomain(ctx *fiber.Ctx) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return err
	}
	detail, err := c.app.GetDomainDetail(util.Context(ctx), id)
	return result.Once(ctx, detail, err)
}

// CreateDomain 创建短域名
func (c *ShortURLAdminController) CreateDomain(ctx *fiber.Ctx) error {
	var req dto.CreateDomainReq
	if err := c.bind(ctx, &req); err != nil {
		return err
	}
	domain, err := c.app.CreateDomain(util.Context(ctx), &req)
	return result.Once(ctx, domain, err)
}

// UpdateDomain 更新短域名
func (c *ShortURLAdminController) UpdateDomain(ctx *fiber.Ctx) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateDomainReq
	if err := c.bind(ctx, &req); err != nil {
		return err
	}
	domain, err := c.app.UpdateDomain(util.Context(ctx), id, &req)
	return result.Once(ctx, domain, err)
}

// DeleteDomain 删除短域名
func (c *ShortURLAdminController) DeleteDomain(ctx *fiber.Ctx) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return err
	}
	err = c.app.DeleteDomain(util.Context(ctx), id)
	return result.Once(ctx, "删除成功", err)
}

// ListLinks 查询短链接列表
func (c *ShortURLAdminController) ListLinks(ctx *fiber.Ctx) error {
	page, err := c.parsePage(ctx)
	if err != nil {
		return err
	}
	var query dto.LinkQuery
	if err := ctx.QueryParser(&query); err != nil {
		return c.err.New("查询参数错误", err).ValidWithCtx().WithTraceID(util.Context(ctx))
	}
	links, total, err := c.app.ListLinks(util.Context(ctx), query.DomainID, page)
	if err != nil {
		return err
	}
	return result.OK(ctx, result.PageData{Total: total, Content: links})
}

// GetLink 获取短链接详情
func (c *ShortURLAdminController) GetLink(ctx *fiber.Ctx) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return err
	}
	link, err := c.app.GetLink(util.Context(ctx), id)
	return result.Once(ctx, link, err)
}

// CreateLink 创建短链接
func (c *ShortURLAdminController) CreateLink(ctx *fiber.Ctx) error {
	var req dto.CreateLinkReq
	if err := c.bind(ctx, &req); err != nil {
		return err
	}
	link, err := c.app.CreateShortLink(util.Context(ctx), &req)
	return result.Once(ctx, link, err)
}

// UpdateLink 更新短链接
func (c *ShortURLAdminController) UpdateLink(ctx *fiber.Ctx) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateLinkReq
	if err := c.bind(ctx, &req); err != nil {
		return err
	}
	link, err := c.app.UpdateShortLink(util.Context(ctx), id, &req)
	return result.Once(ctx, link, err)
}

// UpdateLinkStatus 启用或禁用短链接
func (c *ShortURLAdminController) UpdateLinkStatus(ctx *fiber.Ctx) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateLinkStatusReq
	if err := c.bind(ctx, &req); err != nil {
		return err
	}
	err = c.app.UpdateShortLinkStatus(util.Context(ctx), id, *req.Enabled)
	return result.Once(ctx, "更新状态成功", err)
}

// DeleteLink 删除短链接
func (c *ShortURLAdminController) DeleteLink(ctx *fiber.Ctx) error {
	id, err := c.parseID(ctx)
	if err != nil {
		return err
	}
	err = c.app.DeleteShortLink(util.Context(ctx), id)
	return result.Once(ctx, "删除成功", err)
}
