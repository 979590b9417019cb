package repository

import (
	"time"

	"github.com/simplyfresh/simplyfresh/internal/models"
)

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page          int
	PageSize      int
	Category      string
	Search        string
	PriceMin      *models.Money
	PriceMax      *models.Money
	OnlyActive    bool
	OnlySpotlight bool
	OrderBy       string
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page          int
	PageSize      int
	Keyword       string
	Status        string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	LastLoginFrom *time.Time
	LastLoginTo   *time.Time
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// PromoCodeListFilter 查询优惠码列表的过滤条件
type PromoCodeListFilter struct {
	Page      int
	PageSize  int
	Code      string
	IsActive  *bool
	OnlyValid bool
}

// PointTransactionListFilter 查询积分流水的过滤条件
type PointTransactionListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Type     string
}
