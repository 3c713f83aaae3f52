package dao

import (
	"context"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/mvc"
	"shortgate/system/template/internal/model"

	"gorm.io/gorm"
)

// AssetDao 模板资源数据访问层
type AssetDao struct {
	mvc.IBaseDao[model.TemplateAsset]
	log *logger.Log
	err *errorc.ErrorBuilder
	DB  *gorm.DB
}

// NewAssetDao 创建模板资源 DAO 实例
func NewAssetDao(db *gorm.DB, log *logger.Log) *AssetDao {
	return &AssetDao{
		IBaseDao: mvc.NewGormDao[model.TemplateAsset](db),
		log:      log.WithEntryName("AssetDao"),
		err:      errorc.NewErrorBuilder("AssetDao"),
		DB:       db,
	}
}

// FindPublic 按前缀与文件名查找公开资源
func (d *AssetDao) FindPublic(ctx context.Context, prefix, filename string) (*model.TemplateAsset, error) {
	var result model.TemplateAsset
	err := d.DB.WithContext(ctx).
		Where("asset_prefix = ? AND filename = ? AND is_public = ?", prefix, filename, true).
		First(&result).Error
	if err != nil {
		if errorc.IsNotFound(err) {
			return nil, d.err.New("资源不存在", err).NotFound()
		}
		return nil, d.err.New("查询资源失败", err).DB()
	}
	return &result, nil
}
