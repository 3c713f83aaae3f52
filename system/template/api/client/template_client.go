package client

import (
	"context"

	errorc "shortgate/pkg/core/err"
	"shortgate/system/template/api/dto"
	"shortgate/system/template/internal/app"
)

// TemplateClient 模板组件对外客户端（供其他组件渲染页面）
type TemplateClient struct {
	app *app.App
	err *errorc.ErrorBuilder
}

// NewTemplateClient 创建模板客户端实例
func NewTemplateClient(app *app.App) *TemplateClient {
	return &TemplateClient{
		app: app,
		err: errorc.NewErrorBuilder("TemplateClient"),
	}
}

// RenderPage 按域名绑定与页面种类渲染页面
func (c *TemplateClient) RenderPage(ctx context.Context, bindings dto.Bindings, kind dto.Kind, vars dto.PageVars) (*dto.Page, error) {
	return c.app.RenderPage(ctx, bindings, kind, vars)
}
