package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/models"
)

// GuestCartLine 游客购物车行
// 游客购物车只存在于 Redis，凭 X-Cart-Token 读写，登录后合并进数据库购物车
type GuestCartLine struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	UnitPrice models.Money `json:"unit_price"`
	Image     string       `json:"image"`
	Quantity  int          `json:"quantity"`
}

func guestCartKey(token string) string {
	return fmt.Sprintf("cart:guest:%s", token)
}

// GetGuestCart 读取游客购物车
func GetGuestCart(ctx context.Context, token string) ([]GuestCartLine, bool, error) {
	if token == "" {
		return nil, false, nil
	}
	var lines []GuestCartLine
	hit, err := GetJSON(ctx, guestCartKey(token), &lines)
	if err != nil || !hit {
		return nil, hit, err
	}
	return lines, true, nil
}

// SetGuestCart 写入游客购物车并刷新 TTL
func SetGuestCart(ctx context.Context, token string, lines []GuestCartLine, ttl time.Duration) error {
	if token == "" {
		return nil
	}
	if lines == nil {
		lines = []GuestCartLine{}
	}
	return SetJSON(ctx, guestCartKey(token), lines, ttl)
}

// DelGuestCart 删除游客购物车
func DelGuestCart(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return Del(ctx, guestCartKey(token))
}
