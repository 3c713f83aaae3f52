package service

import (
	"context"
	"strings"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/mvc"
	"shortgate/system/shorturl/internal/dao"
	"shortgate/system/shorturl/internal/model"

	"gorm.io/gorm"
)

// DomainService 短域名业务逻辑层
type DomainService struct {
	mvc.IBaseService[model.ShortDomain]
	Dao *dao.DomainDao
	log *logger.Log
	err *errorc.ErrorBuilder
}

// NewDomainService 创建短域名服务实例
func NewDomainService(daoInstance *dao.DomainDao, log *logger.Log) *DomainService {
	return &DomainService{
		IBaseService: mvc.NewBaseService[model.ShortDomain](daoInstance),
		Dao:          daoInstance,
		log:          log.WithEntryName("DomainService"),
		err:          errorc.NewErrorBuilder("DomainService"),
	}
}

// NormalizeHost 转小写并去掉端口与末尾的点
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if strings.HasPrefix(host, "[") {
		if end := strings.IndexByte(host, ']'); end > 0 {
			return host[:end+1]
		}
		return host
	}
	if idx := strings.LastIndexByte(host, ':'); idx >= 0 {
		host = host[:idx]
	}
	return strings.TrimSuffix(host, ".")
}

// Save 在事务中保存域名；设为默认时同时清除其他域名的默认标记
func (s *DomainService) Save(ctx context.Context, domain *model.ShortDomain) error {
	exists, err := s.Dao.ExistsByHost(ctx, domain.Host, domain.ID)
	if err != nil {
		return err
	}
	if exists {
		return s.err.New("域名已存在", nil).ValidWithCtx()
	}

	return s.Dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txDao := s.Dao.WithGormTx(tx)
		if err := txDao.Save(ctx, domain); err != nil {
			return err
		}
		if domain.IsDefault {
			return txDao.ClearDefault(ctx, domain.ID)
		}
		return nil
	})
}
