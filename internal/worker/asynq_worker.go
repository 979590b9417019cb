package worker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/cache"
	"github.com/simplyfresh/simplyfresh/internal/logger"
	"github.com/simplyfresh/simplyfresh/internal/provider"
	"github.com/simplyfresh/simplyfresh/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusNotify, c.handleOrderStatusNotify)
	mux.HandleFunc(queue.TaskCartExpire, c.handleCartExpire)
}

func (c *Consumer) handleOrderStatusNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_notify_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_notify_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_notify_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	var receiverEmail string
	if order.UserID != 0 {
		user, err := c.UserRepo.GetByID(order.UserID)
		if err != nil {
			logger.Warnw("worker_order_status_notify_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
			return err
		}
		if user != nil {
			receiverEmail = strings.TrimSpace(user.Email)
		}
	}
	if receiverEmail == "" {
		logger.Debugw("worker_order_status_notify_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	// 通知渠道尚未接入，先落日志留痕
	logger.Infow("worker_order_status_notify",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"receiver_email", receiverEmail,
		"status", status,
	)
	return nil
}

func (c *Consumer) handleCartExpire(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_cart_expire_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CartExpirePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_cart_expire_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserID != 0 {
		return c.expireUserCart(payload.UserID)
	}
	token := strings.TrimSpace(payload.CartToken)
	if token == "" {
		logger.Debugw("worker_cart_expire_skip_empty_token")
		return nil
	}
	if err := cache.DelGuestCart(ctx, token); err != nil {
		logger.Warnw("worker_cart_expire_del_failed", "cart_token", token, "error", err)
		return err
	}
	logger.Debugw("worker_cart_expire_done", "cart_token", token)
	return nil
}

// expireUserCart 清理闲置的用户购物车。任务按购物车活动延时入队，
// 执行时若购物车在保留期内又有更新则跳过。
func (c *Consumer) expireUserCart(userID uint) error {
	items, err := c.CartRepo.ListByUser(userID)
	if err != nil {
		logger.Warnw("worker_cart_expire_fetch_failed", "user_id", userID, "error", err)
		return err
	}
	if len(items) == 0 {
		return nil
	}
	ttl := time.Duration(c.Config.Cart.GuestTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	var lastActivity time.Time
	for _, item := range items {
		if item.UpdatedAt.After(lastActivity) {
			lastActivity = item.UpdatedAt
		}
	}
	if time.Since(lastActivity) < ttl {
		logger.Debugw("worker_cart_expire_skip_active", "user_id", userID, "last_activity", lastActivity)
		return nil
	}
	if err := c.CartRepo.ClearByUser(userID); err != nil {
		logger.Warnw("worker_cart_expire_clear_failed", "user_id", userID, "error", err)
		return err
	}
	logger.Infow("worker_cart_expire_user_cart_cleared", "user_id", userID)
	return nil
}
