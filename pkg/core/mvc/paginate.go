package mvc

import (
	"gorm.io/gorm"
)

const maxPageSize = 100

type Page struct {
	PageNum int    `json:"pageNum" query:"page"`
	Size    int    `json:"size" query:"pageSize"`
	// Sort 仅由代码设置，不接受请求参数
	Sort string `json:"-" query:"-"`
}

// Normalize 补全默认值并限制单页大小
func (page *Page) Normalize() *Page {
	if page.PageNum <= 0 {
		page.PageNum = 1
	}
	if page.Size <= 0 {
		page.Size = 10
	}
	if page.Size > maxPageSize {
		page.Size = maxPageSize
	}
	return page
}

func Paginate(page *Page) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page.Normalize()
		offset := (page.PageNum - 1) * page.Size
		return db.Offset(offset).Limit(page.Size)
	}
}
