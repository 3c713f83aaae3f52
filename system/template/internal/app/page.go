package app

import (
	"context"

	"shortgate/system/template/api/dto"
	"shortgate/system/template/internal/service"
)

// RenderPage 选择模板并渲染
func (a *App) RenderPage(ctx context.Context, bindings dto.Bindings, kind dto.Kind, vars dto.PageVars) (*dto.Page, error) {
	tpl, err := a.TemplateService.Select(ctx, bindings, kind)
	if err != nil {
		return nil, err
	}
	return &dto.Page{
		TemplateID: tpl.ID,
		Body:       service.Render(tpl, vars),
	}, nil
}

// Bootstrap 按需写入内置模板后加载系统默认模板
func (a *App) Bootstrap(ctx context.Context, seed bool) error {
	if seed {
		if err := a.TemplateService.EnsureSystemTemplates(ctx); err != nil {
			return err
		}
	}
	return a.TemplateService.LoadDefaults(ctx)
}
