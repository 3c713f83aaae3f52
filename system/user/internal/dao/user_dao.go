package dao

import (
	"context"
	"errors"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/mvc"
	"shortgate/system/user/internal/model"

	"gorm.io/gorm"
)

// UserDao 用户数据访问层
type UserDao struct {
	mvc.IBaseDao[model.User]
	log *logger.Log
	err *errorc.ErrorBuilder
	db  *gorm.DB
}

// NewUserDao 创建用户DAO实例
func NewUserDao(db *gorm.DB, log *logger.Log) *UserDao {
	return &UserDao{
		IBaseDao: mvc.NewGormDao[model.User](db),
		log:      log,
		err:      errorc.NewErrorBuilder("UserDao"),
		db:       db,
	}
}

// FindByUsername 根据账号查询用户
func (d *UserDao) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := d.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, d.err.New("用户不存在", err).NotFound()
		}
		return nil, d.err.New("查询用户失败", err).DB()
	}
	return &user, nil
}

// ExistsByUsername 检查账号是否存在
func (d *UserDao) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Unscoped().Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, d.err.New("检查账号是否存在失败", err).DB()
	}
	return count > 0, nil
}

// UpdatePassword 更新密码
func (d *UserDao) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	_, err := d.UpdateColumnsById(ctx, id, map[string]interface{}{"password_hash": passwordHash})
	return err
}

// CountAll 查询用户总数（含已删除）
func (d *UserDao) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Unscoped().Model(&model.User{}).Count(&count).Error
	if err != nil {
		return 0, d.err.New("查询用户数量失败", err).DB()
	}
	return count, nil
}
