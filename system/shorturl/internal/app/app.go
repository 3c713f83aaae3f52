package app

import (
	"context"
	"time"

	"shortgate/base"
	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/system/shorturl/internal/dao"
	"shortgate/system/shorturl/internal/service"
	tdto "shortgate/system/template/api/dto"

	"github.com/go-redis/cache/v9"
	"gorm.io/gorm"
)

// PageRenderer 页面渲染能力，由模板组件客户端提供
type PageRenderer interface {
	RenderPage(ctx context.Context, bindings tdto.Bindings, kind tdto.Kind, vars tdto.PageVars) (*tdto.Page, error)
}

// Deps 短网址组件依赖
type Deps struct {
	DB         *gorm.DB
	Cache      *cache.Cache
	Pages      PageRenderer
	LinkTTL    time.Duration
	DomainTTL  time.Duration
	CodeLength int
}

// App 短网址组件应用层
type App struct {
	DomainService *service.DomainService
	LinkService   *service.LinkService
	pages         PageRenderer
	cache         *cache.Cache
	linkTTL       time.Duration
	domainTTL     time.Duration
	codeLength    int
	log           *logger.Log
	err           *errorc.ErrorBuilder
}

// NewApp 使用全局依赖创建短网址组件应用层实例
func NewApp(pages PageRenderer) *App {
	cfg := base.Configures.Config.ShortURL
	return NewAppWith(Deps{
		DB:         base.DB,
		Cache:      base.Cache,
		Pages:      pages,
		LinkTTL:    time.Duration(cfg.LinkCacheTTL) * time.Second,
		DomainTTL:  time.Duration(cfg.DomainCacheTTL) * time.Second,
		CodeLength: cfg.CodeLength,
	})
}

// NewAppWith 按给定依赖创建
func NewAppWith(deps Deps) *App {
	log := logger.GetLogger().WithEntryName("ShortURLApp")

	c := deps.Cache
	if c == nil {
		c = cache.New(&cache.Options{LocalCache: cache.NewTinyLFU(1000, time.Minute)})
	}

	domainDao := dao.NewDomainDao(deps.DB, log)
	linkDao := dao.NewLinkDao(deps.DB, log)

	return &App{
		DomainService: service.NewDomainService(domainDao, log),
		LinkService:   service.NewLinkService(linkDao, log),
		pages:         deps.Pages,
		cache:         c,
		linkTTL:       deps.LinkTTL,
		domainTTL:     deps.DomainTTL,
		codeLength:    deps.CodeLength,
		log:           log,
		err:           errorc.NewErrorBuilder("ShortURLApp"),
	}
}
