package app

import (
	"context"
	"fmt"

	"shortgate/system/shorturl/internal/model"

	"github.com/go-redis/cache/v9"
)

const (
	domainHostCacheKey = "shorturl:domain:host:%s"
	linkCacheKey       = "shorturl:domain:%d:code:%s"
)

// lookupDomain 根据 host 查找域名（带缓存）
func (a *App) lookupDomain(ctx context.Context, host string) (*model.ShortDomain, error) {
	var domain *model.ShortDomain
	err := a.cache.Once(&cache.Item{
		Ctx:   ctx,
		Key:   fmt.Sprintf(domainHostCacheKey, host),
		Value: &domain,
		TTL:   a.domainTTL,
		Do: func(*cache.Item) (interface{}, error) {
			return a.DomainService.Dao.FindByHost(ctx, host)
		},
	})
	if err != nil {
		return nil, err
	}
	return domain, nil
}

// lookupLink 根据域名与短码查找短链接（带缓存）
func (a *App) lookupLink(ctx context.Context, domainID int64, code string) (*model.ShortLink, error) {
	var link *model.ShortLink
	err := a.cache.Once(&cache.Item{
		Ctx:   ctx,
		Key:   fmt.Sprintf(linkCacheKey, domainID, code),
		Value: &link,
		TTL:   a.linkTTL,
		Do: func(*cache.Item) (interface{}, error) {
			return a.LinkService.Dao.FindByDomainAndCode(ctx, domainID, code)
		},
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (a *App) invalidateDomainCache(ctx context.Context, hosts ...string) {
	for _, host := range hosts {
		if err := a.cache.Delete(ctx, fmt.Sprintf(domainHostCacheKey, host)); err != nil {
			a.log.WithErr(err).WithField("host", host).Warn("清除域名缓存失败")
		}
	}
}

func (a *App) invalidateLinkCache(ctx context.Context, domainID int64, code string) {
	if err := a.cache.Delete(ctx, fmt.Sprintf(linkCacheKey, domainID, code)); err != nil {
		a.log.WithErr(err).WithField("domainId", domainID).WithField("code", code).Warn("清除短链接缓存失败")
	}
}
