package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表
type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                       // 主键
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`          // 邮箱
	PasswordHash       string         `gorm:"not null" json:"-"`                          // 密码哈希（不返回给前端）
	FirstName          string         `gorm:"type:varchar(100)" json:"first_name"`        // 名
	LastName           string         `gorm:"type:varchar(100)" json:"last_name"`         // 姓
	PhoneNumber        string         `gorm:"type:varchar(30)" json:"phone_number"`       // 联系电话
	Street             string         `gorm:"type:varchar(200)" json:"street"`            // 街道
	District           string         `gorm:"type:varchar(100)" json:"district"`          // 区
	City               string         `gorm:"type:varchar(100)" json:"city"`              // 城市
	PostalCode         string         `gorm:"type:varchar(20)" json:"postal_code"`        // 邮编
	State              string         `gorm:"type:varchar(100)" json:"state"`             // 州/省
	Country            string         `gorm:"type:varchar(100)" json:"country"`           // 国家
	PointBalance       int64          `gorm:"not null;default:0" json:"point_balance"`    // 积分余额
	Status             string         `gorm:"default:'active';index" json:"status"`       // 账号状态
	Locale             string         `gorm:"default:'en-US'" json:"locale"`              // 语言偏好
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`                // Token 版本（用于全量失效）
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                             // 该时间点前签发的 Token 失效
	RegisteredAt       time.Time      `gorm:"index" json:"registered_at"`                 // 注册时间
	LastLoginAt        *time.Time     `json:"last_login_at"`                              // 最后登录时间
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                    // 创建时间
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`                    // 更新时间
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                             // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// FullName 拼接显示姓名
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ShippingAddress 由账户资料拼接默认收货地址
func (u *User) ShippingAddress() string {
	if u == nil {
		return ""
	}
	parts := make([]string, 0, 6)
	for _, part := range []string{u.Street, u.District, u.City, u.PostalCode, u.State, u.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	address := ""
	for i, part := range parts {
		if i > 0 {
			address += ", "
		}
		address += part
	}
	return address
}
