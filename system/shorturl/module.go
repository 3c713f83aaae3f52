package shorturl

import (
	internalapp "shortgate/system/shorturl/internal/app"
)

// Deps 短网址组件依赖
type Deps = internalapp.Deps

// PageRenderer 页面渲染能力，一般传入模板组件的客户端
type PageRenderer = internalapp.PageRenderer

// Module 短网址组件模块
type Module struct {
	internalApp *internalapp.App
}

// NewModule 使用全局依赖创建短网址组件模块
func NewModule(pages PageRenderer) *Module {
	return &Module{internalApp: internalapp.NewApp(pages)}
}

// NewModuleWith 按给定依赖创建短网址组件模块
func NewModuleWith(deps Deps) *Module {
	return &Module{internalApp: internalapp.NewAppWith(deps)}
}
