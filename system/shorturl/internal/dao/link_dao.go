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

// LinkDao 短链接数据访问层
type LinkDao struct {
	mvc.IBaseDao[model.ShortLink]
	log *logger.Log
	err *errorc.ErrorBuilder
	DB  *gorm.DB
}

// NewLinkDao 创建短链接 DAO 实例
func NewLinkDao(db *gorm.DB, log *logger.Log) *LinkDao {
	return &LinkDao{
		IBaseDao: mvc.NewGormDao[model.ShortLink](db),
		log:      log.WithEntryName("LinkDao"),
		err:      errorc.NewErrorBuilder("LinkDao"),
		DB:       db,
	}
}

// FindByDomainAndCode 根据域名ID和短码查找
func (d *LinkDao) FindByDomainAndCode(ctx context.Context, domainID int64, code string) (*model.ShortLink, error) {
	var result model.ShortLink
	err := d.DB.WithContext(ctx).Where("domain_id = ? AND code = ?", domainID, code).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, d.err.New("短链接不存在", err).NotFound()
		}
		return nil, d.err.New("查询短链接失败", err).DB()
	}
	return &result, nil
}

// ExistsByDomainAndCode 检查短码是否已存在，软删除的短码不复用
func (d *LinkDao) ExistsByDomainAndCode(ctx context.Context, domainID int64, code string) (bool, error) {
	var count int64
	err := d.DB.WithContext(ctx).Unscoped().Model(&model.ShortLink{}).
		Where("domain_id = ? AND code = ?", domainID, code).Count(&count).Error
	if err != nil {
		return false, d.err.New("检查短码是否存在失败", err).DB()
	}
	return count > 0, nil
}

// IncrementIfAllowed 在链接仍启用且未达上限时原子递增访问次数，返回是否递增成功
func (d *LinkDao) IncrementIfAllowed(ctx context.Context, id int64) (bool, error) {
	result := d.DB.WithContext(ctx).Model(&model.ShortLink{}).
		Where("id = ? AND enabled = ?", id, true).
		Where("max_visits IS NULL OR visit_count < max_visits").
		UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1))
	if result.Error != nil {
		return false, d.err.New("更新访问次数失败", result.Error).DB()
	}
	return result.RowsAffected == 1, nil
}

// UpdateEnabled 更新启用状态
func (d *LinkDao) UpdateEnabled(ctx context.Context, id int64, enabled bool) error {
	err := d.DB.WithContext(ctx).Model(&model.ShortLink{}).
		Where("id = ?", id).
		UpdateColumn("enabled", enabled).Error
	if err != nil {
		return d.err.New("更新短链接状态失败", err).DB()
	}
	return nil
}

// Save 保存全部字段（允许零值与 NULL）
func (d *LinkDao) Save(ctx context.Context, link *model.ShortLink) error {
	if err := d.DB.WithContext(ctx).Save(link).Error; err != nil {
		return d.err.New("保存短链接失败", err).DB()
	}
	return nil
}

// CountByDomain 统计域名下的短链接数量
func (d *LinkDao) CountByDomain(ctx context.Context, domainID int64) (int64, error) {
	return d.Count(ctx, map[string]interface{}{"domain_id": domainID})
}

// ListByDomainWithPage 分页查询短链接，domainID 为 0 时查询全部
func (d *LinkDao) ListByDomainWithPage(ctx context.Context, domainID int64, page *mvc.Page) ([]*model.ShortLink, int64, error) {
	conditions := map[string]interface{}{}
	if domainID > 0 {
		conditions["domain_id"] = domainID
	}
	return d.FindPageByMap(ctx, page, conditions)
}
