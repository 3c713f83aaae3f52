package mvc

import (
	"context"

	errorc "shortgate/pkg/core/err"

	"gorm.io/gorm"
)

// GormDaoImpl GORM数据访问实现
type GormDaoImpl[T any] struct {
	db *gorm.DB
}

// NewGormDao 创建GORM数据访问实例
func NewGormDao[T any](db *gorm.DB) IBaseDao[T] {
	return &GormDaoImpl[T]{
		db: db,
	}
}

func (d *GormDaoImpl[T]) WithTx(tx interface{}) IBaseDao[T] {
	if gormDB, ok := tx.(*gorm.DB); ok {
		return &GormDaoImpl[T]{
			db: gormDB,
		}
	}
	return d
}

func (d *GormDaoImpl[T]) Create(ctx context.Context, entity *T) error {
	err := d.db.WithContext(ctx).Create(entity).Error
	if err != nil {
		return errorc.New("数据库操作失败", err).DB()
	}
	return nil
}

func (d *GormDaoImpl[T]) DeleteById(ctx context.Context, id interface{}) error {
	result := d.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return errorc.New("删除记录失败", result.Error).DB()
	}
	if result.RowsAffected == 0 {
		return errorc.New("要删除的记录不存在", nil).NotFound()
	}
	return nil
}

func (d *GormDaoImpl[T]) UpdateColumnsById(ctx context.Context, id interface{}, columns map[string]interface{}) (int64, error) {
	result := d.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return 0, errorc.New("更新记录失败", result.Error).DB()
	}
	if result.RowsAffected == 0 {
		return 0, errorc.New("要更新的记录不存在", nil).NotFound()
	}
	return result.RowsAffected, nil
}

func (d *GormDaoImpl[T]) FindById(ctx context.Context, id interface{}) (*T, error) {
	var entity T
	err := d.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		return nil, errorc.New("查询记录失败", err).DB()
	}
	return &entity, nil
}

func (d *GormDaoImpl[T]) FindPageByMap(ctx context.Context, page *Page, conditions map[string]interface{}) ([]*T, int64, error) {
	var entities []*T
	var total int64

	db := d.db.WithContext(ctx).Model(new(T))
	if len(conditions) > 0 {
		db = db.Where(conditions)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, errorc.New("查询记录失败", err).DB()
	}

	db = db.Scopes(Paginate(page))
	if page.Sort != "" {
		db = db.Order(page.Sort)
	} else {
		db = db.Order("id DESC")
	}

	if err := db.Find(&entities).Error; err != nil {
		return nil, 0, errorc.New("查询记录失败", err).DB()
	}

	return entities, total, nil
}

func (d *GormDaoImpl[T]) Count(ctx context.Context, conditions map[string]interface{}) (int64, error) {
	var total int64
	db := d.db.WithContext(ctx).Model(new(T))
	if len(conditions) > 0 {
		db = db.Where(conditions)
	}
	if err := db.Count(&total).Error; err != nil {
		return 0, errorc.New("统计记录数失败", err).DB()
	}
	return total, nil
}
