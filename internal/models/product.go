package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                       // 主键
	Name            string         `gorm:"uniqueIndex;not null" json:"name"`                           // 商品名称
	Category        string         `gorm:"type:varchar(50);not null;index" json:"category"`            // 分类
	PriceAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"`  // 单价
	Image           string         `gorm:"type:varchar(500)" json:"image"`                             // 图片路径
	QuantityInStock int            `gorm:"not null;default:0" json:"quantity_in_stock"`                // 库存数量
	IsActive        bool           `gorm:"not null;index" json:"is_active"`                            // 是否上架（显式写入，避免默认值覆盖 false）
	IsSpotlight     bool           `gorm:"default:false;index" json:"is_spotlight"`                    // 是否首页推荐
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                                 // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
