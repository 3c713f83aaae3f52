package model

import (
	"shortgate/pkg/core/model/common"
)

// ShortDomain 短域名模型
type ShortDomain struct {
	common.Model
	Host                   string `gorm:"column:host;type:varchar(255);not null;uniqueIndex;comment:短域名" json:"host" comment:"短域名（小写，不含端口）"`
	Enabled                bool   `gorm:"column:is_active;not null;comment:是否启用" json:"enabled" comment:"是否启用"`
	IsDefault              bool   `gorm:"not null;comment:是否默认域名" json:"isDefault" comment:"是否默认域名"`
	Comment                string `gorm:"column:notes;type:varchar(500);comment:备注" json:"comment" comment:"备注"`
	ErrorTemplateID        *int64 `gorm:"comment:错误页模板" json:"errorTemplateId" comment:"错误页模板ID"`
	PasswordTemplateID     *int64 `gorm:"comment:密码页模板" json:"passwordTemplateId" comment:"密码页模板ID"`
	InterstitialTemplateID *int64 `gorm:"comment:中间页模板" json:"interstitialTemplateId" comment:"中间页模板ID"`
}

// TableName 设置表名
func (ShortDomain) TableName() string {
	return "shorturl_domains"
}
