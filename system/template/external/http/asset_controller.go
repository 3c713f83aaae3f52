package http

import (
	"net/http"
	"strconv"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/util"
	internalapp "shortgate/system/template/internal/app"

	"github.com/gofiber/fiber/v2"
)

// AssetController 模板资源公开访问
type AssetController struct {
	app *internalapp.App
	err *errorc.ErrorBuilder
	log *logger.Log
}

// NewAssetController 创建模板资源控制器
func NewAssetController(app *internalapp.App) *AssetController {
	return &AssetController{
		app: app,
		err: errorc.NewErrorBuilder("AssetController"),
		log: logger.GetLogger().WithEntryName("AssetController"),
	}
}

// RegisterRoutes 注册路由
func (c *AssetController) RegisterRoutes(router fiber.Router) {
	router.Get("/assets/:prefix/*", c.Serve)
}

// Serve 输出资源内容
func (c *AssetController) Serve(ctx *fiber.Ctx) error {
	reqCtx := util.Context(ctx)
	asset, err := c.app.AssetService.Resolve(reqCtx, ctx.Params("prefix"), ctx.Params("*"))
	if err != nil {
		// 资源路由不经过 API 日志中间件，内部错误在这里落日志
		if errorc.CodeOf(err).IsInternal() {
			errorc.ParseError(err).WithTraceID(reqCtx).ToLog(c.log.GetLogger(), "读取模板资源失败")
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, asset.ContentType)
	ctx.Set(fiber.HeaderCacheControl, asset.CacheControl)

	if asset.Inline {
		ctx.Set(fiber.HeaderContentLength, strconv.FormatInt(asset.ContentLength, 10))
		return ctx.Status(fiber.StatusOK).Send(asset.Content)
	}

	if asset.ETag != "" {
		ctx.Set(fiber.HeaderETag, asset.ETag)
	}
	if asset.LastModified != nil {
		ctx.Set(fiber.HeaderLastModified, asset.LastModified.UTC().Format(http.TimeFormat))
	}
	if asset.ContentEncoding != "" {
		ctx.Set(fiber.HeaderContentEncoding, asset.ContentEncoding)
	}
	if asset.ContentDisposition != "" {
		ctx.Set(fiber.HeaderContentDisposition, asset.ContentDisposition)
	}
	if asset.ContentLanguage != "" {
		ctx.Set(fiber.HeaderContentLanguage, asset.ContentLanguage)
	}

	size := -1
	if asset.ContentLength >= 0 {
		size = int(asset.ContentLength)
	}
	return ctx.Status(fiber.StatusOK).SendStream(asset.Body, size)
}
