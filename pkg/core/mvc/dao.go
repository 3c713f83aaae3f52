package mvc

import (
	"context"
)

// IBaseDao 通用数据访问接口
type IBaseDao[T any] interface {
	// Create 创建记录
	Create(ctx context.Context, entity *T) error
	// DeleteById 根据ID删除记录
	DeleteById(ctx context.Context, id interface{}) error
	// UpdateColumnsById 根据ID更新指定列（允许零值）
	UpdateColumnsById(ctx context.Context, id interface{}, columns map[string]interface{}) (int64, error)
	// FindById 根据ID查询记录
	FindById(ctx context.Context, id interface{}) (*T, error)
	// FindPageByMap 分页查询
	FindPageByMap(ctx context.Context, page *Page, conditions map[string]interface{}) ([]*T, int64, error)
	// Count 统计记录数
	Count(ctx context.Context, conditions map[string]interface{}) (int64, error)
	// WithTx 使用事务创建临时实例
	WithTx(tx interface{}) IBaseDao[T]
}
