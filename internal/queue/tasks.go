package queue

import (
	"encoding/json"

	"github.com/simplyfresh/simplyfresh/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusNotify 订单状态通知任务
	TaskOrderStatusNotify = constants.TaskOrderStatusNotify
	// TaskCartExpire 游客购物车过期清理任务
	TaskCartExpire = constants.TaskCartExpire
)

// OrderStatusNotifyPayload 订单状态通知任务载荷
type OrderStatusNotifyPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// CartExpirePayload 购物车过期任务载荷（游客按令牌，用户按 ID）
type CartExpirePayload struct {
	CartToken string `json:"cart_token,omitempty"`
	UserID    uint   `json:"user_id,omitempty"`
}

// NewOrderStatusNotifyTask 创建订单状态通知任务
func NewOrderStatusNotifyTask(payload OrderStatusNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusNotify, body), nil
}

// NewCartExpireTask 创建游客购物车过期任务
func NewCartExpireTask(payload CartExpirePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCartExpire, body), nil
}
