package dao

import (
	"context"
	"errors"

	errorc "shortgate/pkg/core/err"
	"shortgate/pkg/core/logger"
	"shortgate/pkg/core/mvc"
	"shortgate/system/shorturl/internal/model"

	"gorm.io/gorm"
)

// DomainDao 短域名数据访问层
type DomainDao struct {
	mvc.IBaseDao[model.ShortDomain]
	log *logger.Log
	err *errorc.ErrorBuilder
	DB  *gorm.DB
}

// NewDomainDao 创建短域名 DAO 实例
func NewDomainDao(db *gorm.DB, log *logger.Log) *DomainDao {
	return &DomainDao{
		IBaseDao: mvc.NewGormDao[model.ShortDomain](db),
		log:      log.WithEntryName("DomainDao"),
		err:      errorc.NewErrorBuilder("DomainDao"),
		DB:       db,
	}
}

// WithGormTx 使用事务
func (d *DomainDao) WithGormTx(tx *gorm.DB) *DomainDao {
	return &DomainDao{
		IBaseDao: mvc.NewGormDao[model.ShortDomain](tx),
		log:      d.log,
		err:      d.err,
		DB:       tx,
	}
}

// FindByHost 根据 host 查找（含禁用域名，由调用方判断状态）
func (d *DomainDao) FindByHost(ctx context.Context, host string) (*model.ShortDomain, error) {
	var result model.ShortDomain
	err := d.DB.WithContext(ctx).Where("host = ?", host).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, d.err.New("域名不存在", err).NotFound()
		}
		return nil, d.err.New("查询域名失败", err).DB()
	}
	return &result, nil
}

// ExistsByHost 检查 host 是否已被占用，已软删除的记录同样占用唯一索引
func (d *DomainDao) ExistsByHost(ctx context.Context, host string, excludeID int64) (bool, error) {
	var count int64
	query := d.DB.WithContext(ctx).Unscoped().Model(&model.ShortDomain{}).Where("host = ?", host)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, d.err.New("检查域名是否存在失败", err).DB()
	}
	return count > 0, nil
}

// ClearDefault 取消除 keepID 外所有域名的默认标记
func (d *DomainDao) ClearDefault(ctx context.Context, keepID int64) error {
	err := d.DB.WithContext(ctx).Model(&model.ShortDomain{}).
		Where("is_default = ? AND id <> ?", true, keepID).
		UpdateColumn("is_default", false).Error
	if err != nil {
		return d.err.New("清除默认域名失败", err).DB()
	}
	return nil
}

// Save 保存全部字段（允许零值与 NULL）
func (d *DomainDao) Save(ctx context.Context, domain *model.ShortDomain) error {
	if err := d.DB.WithContext(ctx).Save(domain).Error; err != nil {
		return d.err.New("保存域名失败", err).DB()
	}
	return nil
}

// ListWithPage 分页查询
func (d *DomainDao) ListWithPage(ctx context.Context, page *mvc.Page) ([]*model.ShortDomain, int64, error) {
	return d.FindPageByMap(ctx, page, nil)
}
