package dto

import (
	"time"
)

// DomainDTO 短域名DTO
type DomainDTO struct {
	ID                     int64     `json:"id" comment:"ID"`
	Host                   string    `json:"host" comment:"短域名"`
	Enabled                bool      `json:"enabled" comment:"是否启用"`
	IsDefault              bool      `json:"isDefault" comment:"是否默认域名"`
	Comment                string    `json:"comment" comment:"备注"`
	ErrorTemplateID        *int64    `json:"errorTemplateId" comment:"错误页模板ID"`
	PasswordTemplateID     *int64    `json:"passwordTemplateId" comment:"密码页模板ID"`
	InterstitialTemplateID *int64    `json:"interstitialTemplateId" comment:"中间页模板ID"`
	CreatedAt              time.Time `json:"createdAt" comment:"创建时间"`
	UpdatedAt              time.Time `json:"updatedAt" comment:"更新时间"`
}

// DomainDetailDTO 短域名详情，附带短链接数量
type DomainDetailDTO struct {
	DomainDTO
	LinkCount int64 `json:"linkCount" comment:"短链接数量"`
}

// LinkDTO 短链接DTO
type LinkDTO struct {
	ID          int64      `json:"id" comment:"ID"`
	DomainID    int64      `json:"domainId" comment:"短域名ID"`
	Code        string     `json:"code" comment:"短码"`
	TargetType  string     `json:"targetType" comment:"跳转类型"`
	URL         string     `json:"url" comment:"主URL"`
	BackupURL   string     `json:"backupUrl" comment:"备用URL"`
	ExpiresAt   *time.Time `json:"expiresAt" comment:"过期时间"`
	MaxVisits   *int64     `json:"maxVisits" comment:"最大访问次数"`
	VisitCount  int64      `json:"visitCount" comment:"访问次数"`
	HasPassword bool       `json:"hasPassword" comment:"是否设置密码"`
	Enabled     bool       `json:"enabled" comment:"是否启用"`
	Comment     string     `json:"comment" comment:"备注"`
	CreatedAt   time.Time  `json:"createdAt" comment:"创建时间"`
	UpdatedAt   time.Time  `json:"updatedAt" comment:"更新时间"`
}

// CreateDomainReq 创建短域名请求
type CreateDomainReq struct {
	Host                   string `json:"host" validate:"required,hostname_rfc1123" comment:"短域名"`
	Enabled                *bool  `json:"enabled" comment:"是否启用，默认启用"`
	IsDefault              bool   `json:"isDefault" comment:"是否默认域名"`
	Comment                string `json:"comment" validate:"max=500" comment:"备注"`
	ErrorTemplateID        *int64 `json:"errorTemplateId" validate:"omitempty,min=1" comment:"错误页模板ID"`
	PasswordTemplateID     *int64 `json:"passwordTemplateId" validate:"omitempty,min=1" comment:"密码页模板ID"`
	InterstitialTemplateID *int64 `json:"interstitialTemplateId" validate:"omitempty,min=1" comment:"中间页模板ID"`
}

// UpdateDomainReq 更新短域名请求；字段为空表示不修改，模板ID传 0 表示解除绑定
type UpdateDomainReq struct {
	Host                   *string `json:"host" validate:"omitempty,hostname_rfc1123" comment:"短域名"`
	Enabled                *bool   `json:"enabled" comment:"是否启用"`
	IsDefault              *bool   `json:"isDefault" comment:"是否默认域名"`
	Comment                *string `json:"comment" validate:"omitempty,max=500" comment:"备注"`
	ErrorTemplateID        *int64  `json:"errorTemplateId" validate:"omitempty,min=0" comment:"错误页模板ID"`
	PasswordTemplateID     *int64  `json:"passwordTemplateId" validate:"omitempty,min=0" comment:"密码页模板ID"`
	InterstitialTemplateID *int64  `json:"interstitialTemplateId" validate:"omitempty,min=0" comment:"中间页模板ID"`
}

// CreateLinkReq 创建短链接请求
type CreateLinkReq struct {
	DomainID   int64      `json:"domainId" validate:"required,min=1" comment:"短域名ID"`
	TargetType string     `json:"targetType" validate:"required,oneof=URL URL_SCHEME" comment:"跳转类型"`
	URL        string     `json:"url" validate:"required,max=2048" comment:"主URL"`
	BackupURL  string     `json:"backupUrl" validate:"omitempty,max=2048" comment:"备用URL"`
	ExpiresAt  *time.Time `json:"expiresAt" comment:"过期时间"`
	Password   string     `json:"password" validate:"omitempty,max=72" comment:"访问密码"`
	MaxVisits  *int64     `json:"maxVisits" validate:"omitempty,min=1" comment:"最大访问次数"`
	CustomCode string     `json:"customCode" validate:"omitempty,shortcode" comment:"自定义短码"`
	CodeLength int        `json:"codeLength" validate:"omitempty,min=4,max=32" comment:"自动生成短码长度"`
	Comment    string     `json:"comment" validate:"max=500" comment:"备注"`
}

// UpdateLinkReq 更新短链接请求；字段为空表示不修改
type UpdateLinkReq struct {
	TargetType     *string    `json:"targetType" validate:"omitempty,oneof=URL URL_SCHEME" comment:"跳转类型"`
	URL            *string    `json:"url" validate:"omitempty,min=1,max=2048" comment:"主URL"`
	BackupURL      *string    `json:"backupUrl" validate:"omitempty,max=2048" comment:"备用URL"`
	ExpiresAt      *time.Time `json:"expiresAt" comment:"过期时间"`
	ClearExpiresAt bool       `json:"clearExpiresAt" comment:"清除过期时间"`
	Password       *string    `json:"password" validate:"omitempty,max=72" comment:"访问密码，传空字符串表示取消密码"`
	MaxVisits      *int64     `json:"maxVisits" validate:"omitempty,min=0" comment:"最大访问次数，传 0 表示不限制"`
	Comment        *string    `json:"comment" validate:"omitempty,max=500" comment:"备注"`
}

// UpdateLinkStatusReq 更新短链接状态请求
type UpdateLinkStatusReq struct {
	Enabled *bool `json:"enabled" validate:"required" comment:"是否启用"`
}

// LinkQuery 短链接列表查询参数
type LinkQuery struct {
	DomainID int64 `query:"domainId"`
}
