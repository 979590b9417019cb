package models

import (
	"time"
)

// PointTransaction 积分流水
type PointTransaction struct {
	ID           uint      `gorm:"primarykey" json:"id"`                         // 主键
	UserID       uint      `gorm:"index;not null" json:"user_id"`                // 用户 ID
	OrderID      *uint     `gorm:"index" json:"order_id,omitempty"`              // 关联订单 ID
	Type         string    `gorm:"index;not null" json:"type"`                   // 流水类型
	Direction    string    `gorm:"not null" json:"direction"`                    // 方向 in/out
	Points       int64     `gorm:"not null" json:"points"`                       // 积分数
	BalanceAfter int64     `gorm:"not null" json:"balance_after"`                // 变动后余额
	Remark       string    `gorm:"type:varchar(255)" json:"remark,omitempty"`    // 备注
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                      // 创建时间
}

// TableName 指定表名
func (PointTransaction) TableName() string {
	return "point_transactions"
}
