package service

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/simplyfresh/simplyfresh/internal/constants"
	"github.com/simplyfresh/simplyfresh/internal/logger"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/queue"
	"github.com/simplyfresh/simplyfresh/internal/repository"
)

// OrderDetail 订单详情（用户端响应）
type OrderDetail struct {
	Order   *models.Order `json:"order"`
	Summary string        `json:"summary"`
}

// OrderService 订单查询与状态管理
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		queueClient: queueClient,
	}
}

// ListByUser 用户订单列表
func (s *OrderService) ListByUser(userID uint, status string, page, pageSize int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrUserNotFound
	}
	return s.orderRepo.ListByUser(repository.OrderListFilter{
		UserID:   userID,
		Status:   strings.ToLower(strings.TrimSpace(status)),
		Page:     page,
		PageSize: pageSize,
	})
}

// GetByUser 用户订单详情
func (s *OrderService) GetByUser(orderID, userID uint) (*OrderDetail, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return &OrderDetail{
		Order:   order,
		Summary: SummarizeOrderDetails(order.Details),
	}, nil
}

// GetByOrderNoAndUser 按订单号查询用户订单
func (s *OrderService) GetByOrderNoAndUser(orderNo string, userID uint) (*OrderDetail, error) {
	order, err := s.orderRepo.GetByOrderNoAndUser(strings.TrimSpace(orderNo), userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return &OrderDetail{
		Order:   order,
		Summary: SummarizeOrderDetails(order.Details),
	}, nil
}

// ListAdmin 管理端订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetAdmin 管理端订单详情
func (s *OrderService) GetAdmin(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus 管理端更新订单状态
// 取消时回补库存，状态流转后推送通知任务
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidOrderStatus(status) {
		return nil, ErrOrderStatusInvalid
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransitionOrderStatus(order.Status, status) {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	updates := map[string]interface{}{"updated_at": now}
	switch status {
	case constants.OrderStatusShipped:
		updates["shipped_at"] = now
	case constants.OrderStatusDelivered:
		updates["delivered_at"] = now
	case constants.OrderStatusCancelled:
		updates["canceled_at"] = now
	}

	// 取消时状态更新与库存回补在同一事务内完成，任一失败整体回滚
	if err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).UpdateStatus(order.ID, status, updates); err != nil {
			return err
		}
		if status == constants.OrderStatusCancelled {
			productRepo := s.productRepo.WithTx(tx)
			for _, line := range order.Details {
				if _, err := productRepo.RestoreStock(line.ItemID, line.ItemQuantity); err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	order.Status = status
	if s.queueClient != nil && s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueOrderStatusNotify(order.ID, status); err != nil {
			logger.Warnw("order_status_notify_enqueue_failed", "order_id", order.ID, "error", err)
		}
	}
	return order, nil
}
