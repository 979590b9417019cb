package models

import (
	"time"

	"gorm.io/gorm"
)

// PromoCode 优惠码
type PromoCode struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                          // 主键
	Code            string         `gorm:"uniqueIndex;not null" json:"code"`                              // 优惠码
	DiscountPercent Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_percent"` // 折扣百分比（0-100）
	ExpirationDate  time.Time      `gorm:"index;not null" json:"expiration_date"`                         // 失效日期（当日仍有效）
	UsageLimit      int            `gorm:"not null;default:0" json:"usage_limit"`                         // 总使用上限（0 表示不限制）
	TimesUsed       int            `gorm:"not null;default:0" json:"times_used"`                          // 已使用次数
	IsActive        bool           `gorm:"not null" json:"is_active"`                                     // 是否启用（显式写入，避免默认值覆盖 false）
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                       // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                       // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                                // 软删除时间
}

// TableName 指定表名
func (PromoCode) TableName() string {
	return "promo_codes"
}
