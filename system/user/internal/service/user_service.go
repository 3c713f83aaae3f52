package service

import (
	"context"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/mvc"
	"shortgate/pkg/core/security"
	"shortgate/system/user/internal/dao"
	"shortgate/system/user/internal/model"

	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "账号或密码错误"

// UserService 用户服务
type UserService struct {
	mvc.IBaseService[model.User]
	dao *dao.UserDao
	log *logger.Log
	err *errorc.ErrorBuilder
}

// NewUserService 创建用户服务实例
func NewUserService(dao *dao.UserDao, log *logger.Log) *UserService {
	return &UserService{
		IBaseService: mvc.NewBaseService[model.User](dao.IBaseDao),
		dao:          dao,
		log:          log,
		err:          errorc.NewErrorBuilder("UserService"),
	}
}

// CreateUser 创建用户（自动散列密码）
func (s *UserService) CreateUser(ctx context.Context, username, email, password, role string) (*model.User, error) {
	if role != security.RoleAdmin && role != security.RoleUser {
		return nil, s.err.New("无效的角色", nil).ValidWithCtx()
	}

	exists, err := s.dao.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, s.err.New("账号已存在", nil).ValidWithCtx()
	}

	passwordHash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       model.UserStatusEnabled,
	}
	if err := s.dao.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CountAll 查询用户总数
func (s *UserService) CountAll(ctx context.Context) (int64, error) {
	return s.dao.CountAll(ctx)
}

// ValidateLogin 校验登录；账号不存在、已禁用与密码错误统一返回未授权
func (s *UserService) ValidateLogin(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.dao.FindByUsername(ctx, username)
	if err != nil {
		if errorc.IsNotFound(err) {
			return nil, s.err.New(invalidCredentials, nil).NoAuth()
		}
		return nil, err
	}

	if !s.VerifyPassword(password, user.PasswordHash) {
		return nil, s.err.New(invalidCredentials, nil).NoAuth()
	}
	if user.Status != model.UserStatusEnabled {
		return nil, s.err.New("账号已被禁用", nil).NoAuth()
	}
	return user, nil
}

// ChangePassword 修改密码（需验证旧密码）
func (s *UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, err := s.dao.FindById(ctx, userID)
	if err != nil {
		return err
	}

	if !s.VerifyPassword(oldPassword, user.PasswordHash) {
		return s.err.New("旧密码错误", nil).ValidWithCtx()
	}

	newPasswordHash, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.dao.UpdatePassword(ctx, userID, newPasswordHash)
}

// HashPassword 散列密码
func (s *UserService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", s.err.New("密码散列失败", err)
	}
	return string(hash), nil
}

// VerifyPassword 验证密码
func (s *UserService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
