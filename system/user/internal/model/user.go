package model

import "shortgate/pkg/core/model/common"

// User 后台用户
type User struct {
	common.Model
	Username     string `gorm:"uniqueIndex;size:100;not null" json:"username" comment:"登录账号"`
	Email        string `gorm:"size:255" json:"email" comment:"邮箱"`
	PasswordHash string `gorm:"size:255;not null" json:"-" comment:"密码散列"`
	Role         string `gorm:"size:20;not null" json:"role" comment:"角色：admin / user"`
	Status       int8   `gorm:"not null" json:"status" comment:"状态：1=启用，0=禁用"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// UserStatus 用户状态枚举
const (
	UserStatusDisabled = 0 // 禁用
	UserStatusEnabled  = 1 // 启用
)
