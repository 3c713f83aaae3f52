package model

import (
	"errors"
	"strings"

	"shortgate/pkg/core/model/common"
)

// StorageType 资源存储位置
type StorageType int8

const (
	StorageInline StorageType = 0
	StorageObject StorageType = 1
)

// ErrCorruptAsset 存储类型与内容字段不一致
var ErrCorruptAsset = errors.New("template asset storage fields are inconsistent")

// TemplateAsset 模板资源；内容与对象键二选一，通过 NewInlineAsset / NewObjectAsset 构造
type TemplateAsset struct {
	common.Model
	AssetPrefix string      `gorm:"type:varchar(100);not null;uniqueIndex:uk_asset_prefix_filename;comment:资源前缀" json:"assetPrefix"`
	Filename    string      `gorm:"type:varchar(255);not null;uniqueIndex:uk_asset_prefix_filename;comment:文件名" json:"filename"`
	StorageType StorageType `gorm:"type:smallint;not null;comment:存储类型 0内联 1对象存储" json:"storageType"`
	Content     []byte      `gorm:"comment:内联内容" json:"-"`
	ObjectKey   string      `gorm:"type:varchar(1024);comment:对象存储键" json:"objectKey"`
	ContentType *string     `gorm:"type:varchar(100);comment:内容类型" json:"contentType"`
	Size        int64       `gorm:"not null;comment:大小" json:"size"`
	IsPublic    bool        `gorm:"not null;comment:是否公开" json:"isPublic"`
}

// TableName 设置表名
func (TemplateAsset) TableName() string {
	return "template_assets"
}

// Payload 资源内容的两种形态
type Payload interface {
	isPayload()
}

// InlinePayload 内容存放在数据库中
type InlinePayload struct {
	Content []byte
}

// ObjectPayload 内容存放在对象存储中
type ObjectPayload struct {
	Key string
}

func (InlinePayload) isPayload() {}
func (ObjectPayload) isPayload() {}

// Payload 按存储类型取出内容；字段组合不合法时返回 ErrCorruptAsset
func (a *TemplateAsset) Payload() (Payload, error) {
	switch a.StorageType {
	case StorageInline:
		if a.ObjectKey != "" || a.Content == nil {
			return nil, ErrCorruptAsset
		}
		return InlinePayload{Content: a.Content}, nil
	case StorageObject:
		if a.ObjectKey == "" || len(a.Content) > 0 {
			return nil, ErrCorruptAsset
		}
		return ObjectPayload{Key: a.ObjectKey}, nil
	}
	return nil, ErrCorruptAsset
}

// LookupFilename 请求路径中的文件名转为存储的文件名，总是补上前导 "/"
func LookupFilename(filename string) string {
	return "/" + filename
}

// NormalizeFilename 文件名统一以 "/" 开头
func NormalizeFilename(filename string) string {
	if strings.HasPrefix(filename, "/") {
		return filename
	}
	return "/" + filename
}

// NewInlineAsset 构造内联资源
func NewInlineAsset(prefix, filename string, content []byte, contentType string, public bool) *TemplateAsset {
	return &TemplateAsset{
		AssetPrefix: prefix,
		Filename:    NormalizeFilename(filename),
		StorageType: StorageInline,
		Content:     content,
		ContentType: optional(contentType),
		Size:        int64(len(content)),
		IsPublic:    public,
	}
}

// NewObjectAsset 构造对象存储资源
func NewObjectAsset(prefix, filename, objectKey string, size int64, contentType string, public bool) *TemplateAsset {
	return &TemplateAsset{
		AssetPrefix: prefix,
		Filename:    NormalizeFilename(filename),
		StorageType: StorageObject,
		ObjectKey:   objectKey,
		ContentType: optional(contentType),
		Size:        size,
		IsPublic:    public,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
