package models

import (
	"time"
)

// PromoRedemption 优惠码核销记录
type PromoRedemption struct {
	ID             uint      `gorm:"primarykey" json:"id"`                                        // 主键
	PromoCodeID    uint      `gorm:"index;not null" json:"promo_code_id"`                         // 优惠码 ID
	UserID         uint      `gorm:"index;not null" json:"user_id"`                               // 用户 ID
	OrderID        uint      `gorm:"index;not null" json:"order_id"`                              // 订单 ID
	DiscountAmount Money     `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"` // 抵扣金额
	CreatedAt      time.Time `gorm:"index" json:"created_at"`                                     // 创建时间
}

// TableName 指定表名
func (PromoRedemption) TableName() string {
	return "promo_redemptions"
}
