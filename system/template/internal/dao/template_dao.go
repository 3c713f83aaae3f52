package dao

import (
	"context"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/mvc"
	"shortgate/system/template/internal/model"

	"gorm.io/gorm"
)

// TemplateDao 模板数据访问层
type TemplateDao struct {
	mvc.IBaseDao[model.Template]
	log *logger.Log
	err *errorc.ErrorBuilder
	DB  *gorm.DB
}

// NewTemplateDao 创建模板 DAO 实例
func NewTemplateDao(db *gorm.DB, log *logger.Log) *TemplateDao {
	return &TemplateDao{
		IBaseDao: mvc.NewGormDao[model.Template](db),
		log:      log.WithEntryName("TemplateDao"),
		err:      errorc.NewErrorBuilder("TemplateDao"),
		DB:       db,
	}
}

// FindSystemByType 查找某类型的系统默认模板，存在多条时取最早的一条
func (d *TemplateDao) FindSystemByType(ctx context.Context, templateType model.TemplateType) (*model.Template, error) {
	var result model.Template
	err := d.DB.WithContext(ctx).
		Where("type = ? AND is_system = ?", templateType, true).
		Order("id ASC").
		First(&result).Error
	if err != nil {
		if errorc.IsNotFound(err) {
			return nil, d.err.New("系统默认模板不存在", err).NotFound()
		}
		return nil, d.err.New("查询系统默认模板失败", err).DB()
	}
	return &result, nil
}
