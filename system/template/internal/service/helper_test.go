package service

import (
	"testing"
	"time"

	"shortgate/pkg/core/logger"
	"shortgate/system/template/internal/dao"
	"shortgate/system/template/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/go-redis/cache/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Template{}, &model.TemplateAsset{}))
	return db
}

func newTestCache() *cache.Cache {
	return cache.New(&cache.Options{LocalCache: cache.NewTinyLFU(100, time.Minute)})
}

func newTemplateService(t *testing.T, db *gorm.DB) *TemplateService {
	log := logger.GetLogger()
	return NewTemplateService(dao.NewTemplateDao(db, log), newTestCache(), time.Minute, log)
}
