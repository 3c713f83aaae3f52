package app

import (
	"context"

	"shortgate/base"
	"shortgate/system/shorturl"
	"shortgate/system/template"
	"shortgate/system/user"
)

// App 组合根，持有各业务组件的模块门面
type App struct {
	TemplateModule *template.Module
	ShortURLModule *shorturl.Module
	UserModule     *user.Module
}

// NewApp 依赖 base 中已初始化的全局资源
func NewApp() *App {
	templateModule := template.NewModule()
	return &App{
		TemplateModule: templateModule,
		// 短链组件经模板客户端渲染页面
		ShortURLModule: shorturl.NewModule(templateModule.Client),
		UserModule:     user.NewModule(),
	}
}

// Bootstrap 校验系统默认模板并初始化管理员账号，任一失败都不应继续启动
func (a *App) Bootstrap(ctx context.Context) error {
	cfg := base.Configures.Config.ShortURL

	if err := a.TemplateModule.Bootstrap(ctx, cfg.SeedDefaultTemplates); err != nil {
		return err
	}
	return a.UserModule.EnsureBootstrapAdmin(ctx, cfg.BootstrapAdmin.Username, cfg.BootstrapAdmin.Password)
}
