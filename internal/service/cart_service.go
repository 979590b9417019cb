package service

import (
	"context"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/cache"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"
)

// CartLineDetail 购物车行详情（用于响应）
type CartLineDetail struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	UnitPrice models.Money `json:"unit_price"`
	Image     string       `json:"image"`
	Quantity  int          `json:"quantity"`
	Subtotal  models.Money `json:"subtotal"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	guestTTL    time.Duration
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, guestTTL time.Duration) *CartService {
	if guestTTL <= 0 {
		guestTTL = 72 * time.Hour
	}
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		guestTTL:    guestTTL,
	}
}

// ListByUser 获取用户购物车
func (s *CartService) ListByUser(userID uint) ([]CartLineDetail, error) {
	if userID == 0 {
		return nil, ErrCartItemInvalid
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	details := make([]CartLineDetail, 0, len(items))
	for _, item := range items {
		// 商品已下架时从购物车剔除
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			_ = s.cartRepo.DeleteByUserAndProduct(userID, item.ProductID)
			continue
		}
		details = append(details, CartLineDetail{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Image:     item.Image,
			Quantity:  item.Quantity,
			Subtotal:  LineSubtotal(item.UnitPrice, item.Quantity),
		})
	}
	return details, nil
}

// AddItem 加入购物车，已存在时累加数量
func (s *CartService) AddItem(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 {
		return ErrCartItemInvalid
	}
	if quantity <= 0 {
		return ErrCartQuantityInvalid
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotAvailable
	}

	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.cartRepo.UpdateQuantity(userID, productID, existing.Quantity+quantity)
	}
	return s.cartRepo.Create(&models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Name:      product.Name,
		UnitPrice: product.PriceAmount,
		Image:     product.Image,
		Quantity:  quantity,
	})
}

// UpdateQuantity 设置购物车项数量
// quantity <= 0 时移除该项；商品不在购物车中则视为无操作
func (s *CartService) UpdateQuantity(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 {
		return ErrCartItemInvalid
	}
	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if quantity <= 0 {
		return s.cartRepo.DeleteByUserAndProduct(userID, productID)
	}
	return s.cartRepo.UpdateQuantity(userID, productID, quantity)
}

// RemoveItem 移除购物车项
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrCartItemInvalid
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrCartItemInvalid
	}
	return s.cartRepo.ClearByUser(userID)
}

// ListGuest 获取游客购物车
func (s *CartService) ListGuest(ctx context.Context, token string) ([]CartLineDetail, error) {
	if token == "" {
		return nil, ErrCartTokenInvalid
	}
	lines, _, err := cache.GetGuestCart(ctx, token)
	if err != nil {
		return nil, err
	}
	details := make([]CartLineDetail, 0, len(lines))
	for _, line := range lines {
		details = append(details, CartLineDetail{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Image:     line.Image,
			Quantity:  line.Quantity,
			Subtotal:  LineSubtotal(line.UnitPrice, line.Quantity),
		})
	}
	return details, nil
}

// AddGuestItem 游客加入购物车，已存在时累加数量
func (s *CartService) AddGuestItem(ctx context.Context, token string, productID uint, quantity int) error {
	if token == "" {
		return ErrCartTokenInvalid
	}
	if productID == 0 {
		return ErrCartItemInvalid
	}
	if quantity <= 0 {
		return ErrCartQuantityInvalid
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsActive {
		return ErrProductNotAvailable
	}

	lines, _, err := cache.GetGuestCart(ctx, token)
	if err != nil {
		return err
	}
	found := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, cache.GuestCartLine{
			ProductID: productID,
			Name:      product.Name,
			UnitPrice: product.PriceAmount,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}
	return cache.SetGuestCart(ctx, token, lines, s.guestTTL)
}

// UpdateGuestQuantity 设置游客购物车项数量
func (s *CartService) UpdateGuestQuantity(ctx context.Context, token string, productID uint, quantity int) error {
	if token == "" {
		return ErrCartTokenInvalid
	}
	if productID == 0 {
		return ErrCartItemInvalid
	}
	lines, hit, err := cache.GetGuestCart(ctx, token)
	if err != nil || !hit {
		return err
	}
	next := make([]cache.GuestCartLine, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == productID {
			if quantity <= 0 {
				continue
			}
			line.Quantity = quantity
		}
		next = append(next, line)
	}
	return cache.SetGuestCart(ctx, token, next, s.guestTTL)
}

// MergeGuestCart 登录后将游客购物车合并进用户购物车并删除
func (s *CartService) MergeGuestCart(ctx context.Context, token string, userID uint) error {
	if token == "" || userID == 0 {
		return nil
	}
	lines, hit, err := cache.GetGuestCart(ctx, token)
	if err != nil || !hit {
		return err
	}
	for _, line := range lines {
		if err := s.AddItem(userID, line.ProductID, line.Quantity); err != nil {
			// 单个商品失效不阻断整体合并
			continue
		}
	}
	return cache.DelGuestCart(ctx, token)
}
