package app

import (
	"time"

	"shortgate/base"
	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/system/template/internal/dao"
	"shortgate/system/template/internal/service"

	"github.com/go-redis/cache/v9"
	"gorm.io/gorm"
)

// Deps 模板组件依赖
type Deps struct {
	DB           *gorm.DB
	Cache        *cache.Cache
	Store        service.ObjectStore
	CacheControl string
	TemplateTTL  time.Duration
}

// App 模板组件应用层
type App struct {
	TemplateService *service.TemplateService
	AssetService    *service.AssetService
	log             *logger.Log
	err             *errorc.ErrorBuilder
}

// NewApp 使用全局依赖创建模板组件应用层实例
func NewApp() *App {
	deps := Deps{
		DB:           base.DB,
		Cache:        base.Cache,
		CacheControl: base.Configures.Config.ShortURL.AssetCacheControl,
		TemplateTTL:  time.Duration(base.Configures.Config.ShortURL.DomainCacheTTL) * time.Second,
	}
	if base.OSS != nil {
		deps.Store = base.OSS
	}
	return NewAppWith(deps)
}

// NewAppWith 按给定依赖创建
func NewAppWith(deps Deps) *App {
	log := logger.GetLogger().WithEntryName("TemplateApp")

	templateDao := dao.NewTemplateDao(deps.DB, log)
	assetDao := dao.NewAssetDao(deps.DB, log)

	return &App{
		TemplateService: service.NewTemplateService(templateDao, deps.Cache, deps.TemplateTTL, log),
		AssetService:    service.NewAssetService(assetDao, deps.Store, deps.CacheControl, log),
		log:             log,
		err:             errorc.NewErrorBuilder("TemplateApp"),
	}
}
