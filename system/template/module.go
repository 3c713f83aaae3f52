package template

import (
	"context"

	"shortgate/system/template/api/client"
	"shortgate/system/template/internal/app"
)

// Deps 模板组件依赖
type Deps = app.Deps

// Module 模板组件模块门面
type Module struct {
	internalApp *app.App
	// Client 对外客户端，供短链组件渲染页面
	Client *client.TemplateClient
}

// NewModule 使用全局依赖创建模板组件
func NewModule() *Module {
	return newModule(app.NewApp())
}

// NewModuleWith 按给定依赖创建模板组件
func NewModuleWith(deps Deps) *Module {
	return newModule(app.NewAppWith(deps))
}

func newModule(internalApp *app.App) *Module {
	return &Module{
		internalApp: internalApp,
		Client:      client.NewTemplateClient(internalApp),
	}
}

// Bootstrap 启动时调用；缺少任一类型的系统默认模板时返回错误
func (m *Module) Bootstrap(ctx context.Context, seed bool) error {
	return m.internalApp.Bootstrap(ctx, seed)
}
