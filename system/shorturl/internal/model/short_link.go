package model

import (
	"time"

	"shortgate/pkg/core/model/common"
)

// ShortLink 短链接模型
type ShortLink struct {
	common.Model
	DomainID     int64      `gorm:"not null;uniqueIndex:uk_domain_code,priority:1;comment:短域名ID" json:"domainId" comment:"短域名ID"`
	Code         string     `gorm:"type:varchar(100);not null;uniqueIndex:uk_domain_code,priority:2;comment:短码" json:"code" comment:"短码"`
	TargetType   TargetType `gorm:"type:varchar(50);not null;comment:跳转类型" json:"targetType" comment:"跳转类型"`
	URL          string     `gorm:"type:varchar(2048);comment:主URL" json:"url" comment:"主URL"`
	BackupURL    string     `gorm:"type:varchar(2048);comment:备用URL" json:"backupUrl" comment:"备用URL"`
	ExpiresAt    *time.Time `gorm:"comment:过期时间" json:"expiresAt" comment:"过期时间"`
	PasswordHash string     `gorm:"type:varchar(255);comment:访问密码哈希" json:"-" comment:"访问密码哈希"`
	MaxVisits    *int64     `gorm:"comment:最大访问次数（NULL表示无限制）" json:"maxVisits" comment:"最大访问次数"`
	VisitCount   int64      `gorm:"not null;default:0;comment:访问次数" json:"visitCount" comment:"访问次数"`
	Enabled      bool       `gorm:"not null;comment:是否启用" json:"enabled" comment:"是否启用"`
	Comment      string     `gorm:"type:varchar(500);comment:备注" json:"comment" comment:"备注"`
}

// TableName 设置表名
func (ShortLink) TableName() string {
	return "shorturl_links"
}

// IsExpired 是否已过期，到达过期时刻即视为过期
func (s *ShortLink) IsExpired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return !now.Before(*s.ExpiresAt)
}

// IsVisitLimitReached 是否达到访问次数上限
func (s *ShortLink) IsVisitLimitReached() bool {
	if s.MaxVisits == nil {
		return false
	}
	return s.VisitCount >= *s.MaxVisits
}

// HasPassword 是否设置了访问密码
func (s *ShortLink) HasPassword() bool {
	return s.PasswordHash != ""
}
