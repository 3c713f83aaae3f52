package dto

import "time"

// UserDTO 用户对外 DTO
type UserDTO struct {
	ID        int64     `json:"id" comment:"用户ID"`
	Username  string    `json:"username" comment:"登录账号"`
	Email     string    `json:"email" comment:"邮箱"`
	Role      string    `json:"role" comment:"角色"`
	Status    int8      `json:"status" comment:"状态：1=启用，0=禁用"`
	CreatedAt time.Time `json:"createdAt" comment:"创建时间"`
	UpdatedAt time.Time `json:"updatedAt" comment:"更新时间"`
}

// LoginReq 登录请求
type LoginReq struct {
	Username string `json:"username" validate:"required,max=100" comment:"账号"`
	Password string `json:"password" validate:"required,max=72" comment:"密码"`
}

// LoginResp 登录结果
type LoginResp struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	TokenType   string    `json:"tokenType"`
	User        *UserDTO  `json:"user"`
}

// ChangePasswordReq 修改密码请求
type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword" validate:"required" comment:"旧密码"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72" comment:"新密码"`
}
