package app

import (
	"context"

	"shortgate/base"
	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/security"
	"shortgate/system/user/api/dto"
	"shortgate/system/user/internal/dao"
	"shortgate/system/user/internal/model"
	"shortgate/system/user/internal/service"

	"gorm.io/gorm"
)

const tokenType = "Bearer"

// Deps 用户组件依赖
type Deps struct {
	DB   *gorm.DB
	Auth *security.Auth
}

// App 用户组件应用层
type App struct {
	UserService *service.UserService
	auth        *security.Auth
	log         *logger.Log
	err         *errorc.ErrorBuilder
}

// NewApp 使用全局依赖创建用户应用实例
func NewApp() *App {
	return NewAppWith(Deps{DB: base.DB, Auth: base.Auth})
}

// NewAppWith 按给定依赖创建
func NewAppWith(deps Deps) *App {
	log := logger.GetLogger().WithEntryName("UserApp")
	userDao := dao.NewUserDao(deps.DB, log)

	return &App{
		UserService: service.NewUserService(userDao, log),
		auth:        deps.Auth,
		log:         log,
		err:         errorc.NewErrorBuilder("UserApp"),
	}
}

// Auth 返回签发与校验令牌的鉴权器
func (a *App) Auth() *security.Auth {
	return a.auth
}

// Login 校验账号密码并签发访问令牌
func (a *App) Login(ctx context.Context, req *dto.LoginReq) (*dto.LoginResp, error) {
	user, err := a.UserService.ValidateLogin(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := a.auth.IssueToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, a.err.New("创建登录令牌失败", err).WithCode(errorc.ErrorCodeInternal)
	}

	return &dto.LoginResp{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		TokenType:   tokenType,
		User:        toUserDTO(user),
	}, nil
}

// CurrentUser 查询当前登录用户
func (a *App) CurrentUser(ctx context.Context) (*dto.UserDTO, error) {
	userID, err := security.GetUserIDByCtx(ctx)
	if err != nil {
		return nil, err
	}
	user, err := a.UserService.FindById(ctx, userID)
	if err != nil {
		if errorc.IsNotFound(err) {
			return nil, a.err.New("用户不存在", err).NoAuth()
		}
		return nil, err
	}
	return toUserDTO(user), nil
}

// ChangePassword 修改当前用户密码
func (a *App) ChangePassword(ctx context.Context, req *dto.ChangePasswordReq) error {
	userID, err := security.GetUserIDByCtx(ctx)
	if err != nil {
		return err
	}
	return a.UserService.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword)
}

// EnsureBootstrapAdmin 用户表为空时创建管理员账号
func (a *App) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	count, err := a.UserService.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		a.log.Info("用户表已有数据，跳过默认管理员初始化")
		return nil
	}

	user, err := a.UserService.CreateUser(ctx, username, "", password, security.RoleAdmin)
	if err != nil {
		return err
	}
	a.log.WithField("userId", user.ID).WithField("username", user.Username).Warn("已创建默认管理员，请尽快修改密码")
	return nil
}

func toUserDTO(u *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
