package model

import (
	"shortgate/pkg/core/model/common"
	"shortgate/system/template/api/dto"
)

// TemplateType 模板类型
type TemplateType string

const (
	TemplateTypeError        TemplateType = "error"
	TemplateTypePassword     TemplateType = "password"
	TemplateTypeInterstitial TemplateType = "interstitial"
)

// AllTemplateTypes 启动时每种类型都必须有系统默认模板
var AllTemplateTypes = []TemplateType{TemplateTypeError, TemplateTypePassword, TemplateTypeInterstitial}

// TypeOfKind 页面种类到模板类型的映射
func TypeOfKind(kind dto.Kind) (TemplateType, bool) {
	switch kind {
	case dto.KindNotFound, dto.KindExpired, dto.KindLimitReached:
		return TemplateTypeError, true
	case dto.KindPasswordRequired:
		return TemplateTypePassword, true
	case dto.KindInterstitial:
		return TemplateTypeInterstitial, true
	}
	return "", false
}

// Template 页面模板
type Template struct {
	common.Model
	Type        TemplateType `gorm:"type:varchar(20);not null;index;comment:模板类型" json:"type" comment:"模板类型"`
	Name        string       `gorm:"type:varchar(100);not null;comment:模板名称" json:"name" comment:"模板名称"`
	Body        string       `gorm:"type:text;not null;comment:模板内容" json:"body" comment:"模板内容"`
	AssetPrefix string       `gorm:"type:varchar(100);comment:资源前缀" json:"assetPrefix" comment:"资源前缀"`
	IsSystem    bool         `gorm:"not null;index;comment:是否系统默认模板" json:"isSystem" comment:"是否系统默认模板"`
}

// TableName 设置表名
func (Template) TableName() string {
	return "templates"
}

// AssetBase 模板内引用资源的基础路径
func (t *Template) AssetBase() string {
	if t.AssetPrefix == "" {
		return ""
	}
	return "/assets/" + t.AssetPrefix
}
