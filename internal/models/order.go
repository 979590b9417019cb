package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// OrderLine 订单行快照，下单时从购物车复制，后续商品变动不影响历史订单
type OrderLine struct {
	ItemID       uint   `json:"item_id"`       // 商品 ID
	ItemName     string `json:"item_name"`     // 商品名称
	ItemPrice    Money  `json:"item_price"`    // 下单时单价
	ItemQuantity int    `json:"item_quantity"` // 数量
	ItemImage    string `json:"item_image"`    // 商品图片
}

// OrderDetails 订单明细，JSON 存储
type OrderDetails []OrderLine

// Value 实现 driver.Valuer 接口
func (d OrderDetails) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal(OrderDetails{})
	}
	return json.Marshal(d)
}

// Scan 实现 sql.Scanner 接口
func (d *OrderDetails) Scan(value interface{}) error {
	if value == nil {
		*d = OrderDetails{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("order details: unsupported scan type")
	}
	return json.Unmarshal(bytes, d)
}

// Order 订单表
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                          // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`                          // 订单编号
	UserID          uint           `gorm:"index;not null" json:"user_id"`                                 // 用户ID
	Status          string         `gorm:"index;not null" json:"status"`                                  // 订单状态
	Currency        string         `gorm:"not null" json:"currency"`                                      // 币种
	Details         OrderDetails   `gorm:"type:text;not null" json:"details"`                             // 订单明细快照
	OriginalAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"original_amount"` // 原始金额
	DiscountAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"` // 优惠金额
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`    // 实付金额
	PromoCodeID     *uint          `gorm:"index" json:"promo_code_id,omitempty"`                          // 优惠码ID
	PointsAwarded   int64          `gorm:"not null;default:0" json:"points_awarded"`                      // 本单奖励积分
	ShippingAddress string         `gorm:"type:text;not null" json:"shipping_address"`                    // 收货地址
	ShippedAt       *time.Time     `gorm:"index" json:"shipped_at"`                                       // 发货时间
	DeliveredAt     *time.Time     `gorm:"index" json:"delivered_at"`                                     // 送达时间
	CanceledAt      *time.Time     `gorm:"index" json:"canceled_at"`                                      // 取消时间
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                       // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                       // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                                // 软删除时间
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// ItemCount 订单内商品总件数
func (o *Order) ItemCount() int {
	total := 0
	for _, line := range o.Details {
		total += line.ItemQuantity
	}
	return total
}
