package models

import (
	"time"
)

// CartItem 购物车项（加入时快照商品名称/单价/图片）。
// 移除即物理删除，保证同一商品可重新加入。
type CartItem struct {
	ID        uint   `gorm:"primarykey" json:"id"`                                         // 主键
	UserID    uint   `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`    // 用户ID
	ProductID uint   `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"` // 商品ID
	Name      string `gorm:"not null" json:"name"`                                         // 商品名称快照
	UnitPrice Money  `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`      // 单价快照
	Image     string `gorm:"type:varchar(500)" json:"image"`                               // 图片快照
	Quantity  int       `gorm:"not null" json:"quantity"`                                     // 数量
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                      // 更新时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
