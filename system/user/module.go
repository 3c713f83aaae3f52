package user

import (
	"context"

	"shortgate/system/user/internal/app"
)

// Deps 用户组件依赖
type Deps = app.Deps

// Module 用户组件模块门面
type Module struct {
	internalApp *app.App
}

// NewModule 使用全局依赖创建用户组件
func NewModule() *Module {
	return &Module{internalApp: app.NewApp()}
}

// NewModuleWith 按给定依赖创建用户组件
func NewModuleWith(deps Deps) *Module {
	return &Module{internalApp: app.NewAppWith(deps)}
}

// EnsureBootstrapAdmin 用户表为空时创建管理员账号
func (m *Module) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	return m.internalApp.EnsureBootstrapAdmin(ctx, username, password)
}
