package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/simplyfresh/simplyfresh/internal/constants"
	"github.com/simplyfresh/simplyfresh/internal/logger"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/queue"
	"github.com/simplyfresh/simplyfresh/internal/repository"
)

// CheckoutInput 结算输入
type CheckoutInput struct {
	UserID          uint
	PromoCode       string
	ShippingAddress string
	Card            CardDetails
}

// CheckoutPreview 结算预览
type CheckoutPreview struct {
	Lines          []CartLineDetail `json:"lines"`
	Currency       string           `json:"currency"`
	OriginalAmount models.Money     `json:"original_amount"`
	DiscountAmount models.Money     `json:"discount_amount"`
	TotalAmount    models.Money     `json:"total_amount"`
	PromoCode      string           `json:"promo_code,omitempty"`
	PointsEstimate int64            `json:"points_estimate"`
}

// CheckoutResult 结算结果
type CheckoutResult struct {
	Order         *models.Order `json:"order"`
	Summary       string        `json:"summary"`
	PointsAwarded int64         `json:"points_awarded"`
}

// CheckoutService 结算服务
type CheckoutService struct {
	cartService   *CartService
	promoService  *PromoService
	cartRepo      repository.CartRepository
	productRepo   repository.ProductRepository
	orderRepo     repository.OrderRepository
	userRepo      repository.UserRepository
	promoRepo     repository.PromoCodeRepository
	pointRepo     repository.PointRepository
	queueClient   *queue.Client
	currency      string
	pointsPerUnit int64
	orderNoPrefix string
}

// CheckoutServiceDeps 结算服务依赖
type CheckoutServiceDeps struct {
	CartService   *CartService
	PromoService  *PromoService
	CartRepo      repository.CartRepository
	ProductRepo   repository.ProductRepository
	OrderRepo     repository.OrderRepository
	UserRepo      repository.UserRepository
	PromoRepo     repository.PromoCodeRepository
	PointRepo     repository.PointRepository
	QueueClient   *queue.Client
	Currency      string
	PointsPerUnit int64
	OrderNoPrefix string
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(deps CheckoutServiceDeps) *CheckoutService {
	currency := strings.TrimSpace(deps.Currency)
	if currency == "" {
		currency = "MYR"
	}
	pointsPerUnit := deps.PointsPerUnit
	if pointsPerUnit <= 0 {
		pointsPerUnit = 1
	}
	prefix := strings.TrimSpace(deps.OrderNoPrefix)
	if prefix == "" {
		prefix = "SF"
	}
	return &CheckoutService{
		cartService:   deps.CartService,
		promoService:  deps.PromoService,
		cartRepo:      deps.CartRepo,
		productRepo:   deps.ProductRepo,
		orderRepo:     deps.OrderRepo,
		userRepo:      deps.UserRepo,
		promoRepo:     deps.PromoRepo,
		pointRepo:     deps.PointRepo,
		queueClient:   deps.QueueClient,
		currency:      currency,
		pointsPerUnit: pointsPerUnit,
		orderNoPrefix: prefix,
	}
}

// Preview 结算预览
// 优惠码每次基于当前购物车总价重新计算，购物车变动后折扣随之变化
func (s *CheckoutService) Preview(userID uint, promoCode string) (*CheckoutPreview, error) {
	lines, err := s.cartService.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	original := CartTotal(lines)
	preview := &CheckoutPreview{
		Lines:          lines,
		Currency:       s.currency,
		OriginalAmount: original,
		DiscountAmount: models.NewMoneyFromDecimal(decimal.Zero),
		TotalAmount:    original,
	}

	if strings.TrimSpace(promoCode) != "" {
		promo, discount, discounted, err := s.promoService.Validate(promoCode, original)
		if err != nil {
			return nil, err
		}
		preview.PromoCode = promo.Code
		preview.DiscountAmount = discount
		preview.TotalAmount = discounted
	}

	preview.PointsEstimate = PointsForTotal(preview.TotalAmount, s.pointsPerUnit)
	return preview, nil
}

// Checkout 提交订单
// 订单创建、优惠码核销、积分入账、库存扣减与购物车清空在同一事务内完成
func (s *CheckoutService) Checkout(input CheckoutInput) (*CheckoutResult, error) {
	if input.UserID == 0 {
		return nil, ErrUserNotFound
	}
	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	shipping := strings.TrimSpace(input.ShippingAddress)
	if shipping == "" {
		shipping = user.ShippingAddress()
	}
	if shipping == "" {
		return nil, ErrShippingRequired
	}

	now := time.Now()
	if err := ValidateCard(input.Card, now); err != nil {
		return nil, err
	}

	lines, err := s.cartService.ListByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	original := CartTotal(lines)
	discount := models.NewMoneyFromDecimal(decimal.Zero)
	total := original
	var promo *models.PromoCode
	if strings.TrimSpace(input.PromoCode) != "" {
		promo, discount, total, err = s.promoService.Validate(input.PromoCode, original)
		if err != nil {
			return nil, err
		}
	}

	details := make(models.OrderDetails, 0, len(lines))
	for _, line := range lines {
		details = append(details, models.OrderLine{
			ItemID:       line.ProductID,
			ItemName:     line.Name,
			ItemPrice:    line.UnitPrice,
			ItemQuantity: line.Quantity,
			ItemImage:    line.Image,
		})
	}

	points := PointsForTotal(total, s.pointsPerUnit)
	order := &models.Order{
		OrderNo:         generateOrderNo(s.orderNoPrefix),
		UserID:          input.UserID,
		Status:          constants.OrderStatusPending,
		Currency:        s.currency,
		Details:         details,
		OriginalAmount:  original,
		DiscountAmount:  discount,
		TotalAmount:     total,
		PointsAwarded:   points,
		ShippingAddress: shipping,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if promo != nil {
		order.PromoCodeID = &promo.ID
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)
		userRepo := s.userRepo.WithTx(tx)
		pointRepo := s.pointRepo.WithTx(tx)

		if err := orderRepo.Create(order); err != nil {
			return err
		}

		for _, line := range details {
			affected, err := productRepo.ReserveStock(line.ItemID, line.ItemQuantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrStockInsufficient
			}
		}

		if promo != nil {
			promoRepo := s.promoRepo.WithTx(tx)
			if err := s.promoService.Redeem(promoRepo, promo, input.UserID, order.ID, discount); err != nil {
				return err
			}
		}

		if points > 0 {
			if err := userRepo.AddPoints(input.UserID, points); err != nil {
				return err
			}
			// 余额在事务内自增后重新读取，避免并发下流水快照过期
			credited, err := userRepo.GetByID(input.UserID)
			if err != nil {
				return err
			}
			if credited == nil {
				return ErrUserNotFound
			}
			if err := pointRepo.Create(&models.PointTransaction{
				UserID:       input.UserID,
				OrderID:      &order.ID,
				Type:         constants.PointTxnTypeCheckout,
				Direction:    constants.PointTxnDirectionIn,
				Points:       points,
				BalanceAfter: credited.PointBalance,
				Remark:       order.OrderNo,
			}); err != nil {
				return err
			}
		}

		return cartRepo.ClearByUser(input.UserID)
	})
	if err != nil {
		return nil, err
	}

	if s.queueClient != nil && s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueOrderStatusNotify(order.ID, order.Status); err != nil {
			logger.Warnw("order_status_notify_enqueue_failed", "order_id", order.ID, "error", err)
		}
	}

	return &CheckoutResult{
		Order:         order,
		Summary:       SummarizeOrderDetails(details),
		PointsAwarded: points,
	}, nil
}

func generateOrderNo(prefix string) string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("%s%s%s", prefix, now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
