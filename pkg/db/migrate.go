package db

import (
	"shortgate/pkg/core/logger"
	"shortgate/system/shorturl"
	"shortgate/system/template"
	"shortgate/system/user"

	"gorm.io/gorm"
)

// AutoMigrate 自动执行所有数据库迁移
func AutoMigrate(db *gorm.DB) error {
	log := logger.GetLogger().WithEntryName("DatabaseMigration")

	log.Info("开始执行数据库迁移...")

	if err := user.AutoMigrate(db, log); err != nil {
		return err
	}

	// 短链组件引用模板，先迁移模板
	if err := template.AutoMigrate(db, log); err != nil {
		return err
	}

	if err := shorturl.AutoMigrate(db, log); err != nil {
		return err
	}

	log.Info("所有数据库迁移执行完成")
	return nil
}
