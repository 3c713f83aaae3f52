package template

import (
	"shortgate/pkg/core/logger"
	"shortgate/system/template/internal/model"

	"gorm.io/gorm"
)

// AutoMigrate 自动执行模板组件的数据库迁移
func AutoMigrate(db *gorm.DB, log *logger.Log) error {
	log.Info("开始迁移模板组件表...")

	if err := db.AutoMigrate(
		&model.Template{},
		&model.TemplateAsset{},
	); err != nil {
		log.WithErr(err).Error("模板组件表迁移失败")
		return err
	}

	log.Info("模板组件表迁移完成")
	return nil
}
