package service

import (
	"strings"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"
)

// PromoService 优惠码校验与核销
type PromoService struct {
	promoRepo repository.PromoCodeRepository
}

// NewPromoService 创建优惠码服务
func NewPromoService(promoRepo repository.PromoCodeRepository) *PromoService {
	return &PromoService{promoRepo: promoRepo}
}

// Validate 校验优惠码并基于当前总价计算折扣
// 所有失败原因对外统一为 ErrPromoInvalid，避免泄露优惠码是否存在
func (s *PromoService) Validate(code string, total models.Money) (*models.PromoCode, models.Money, models.Money, error) {
	normalized := strings.TrimSpace(code)
	if normalized == "" {
		return nil, models.Money{}, total, ErrPromoInvalid
	}
	promo, err := s.promoRepo.GetByCode(normalized)
	if err != nil {
		return nil, models.Money{}, total, err
	}
	if promo == nil || !promo.IsActive {
		return nil, models.Money{}, total, ErrPromoInvalid
	}
	if promoExpired(promo, time.Now()) {
		return nil, models.Money{}, total, ErrPromoInvalid
	}
	if promo.UsageLimit > 0 && promo.TimesUsed >= promo.UsageLimit {
		return nil, models.Money{}, total, ErrPromoInvalid
	}

	discount, discounted := ApplyDiscountPercent(total, promo.DiscountPercent)
	return promo, discount, discounted, nil
}

// promoExpired 失效判断按日期粒度，当天仍可使用
func promoExpired(promo *models.PromoCode, now time.Time) bool {
	expiry := promo.ExpirationDate
	endOfDay := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 23, 59, 59, 0, expiry.Location())
	return now.After(endOfDay)
}

// Redeem 在事务内核销优惠码并写入核销记录
// 使用次数带守卫条件，并发下达到上限时返回 ErrPromoInvalid
func (s *PromoService) Redeem(repo *repository.GormPromoCodeRepository, promo *models.PromoCode, userID, orderID uint, discount models.Money) error {
	if promo == nil {
		return ErrPromoInvalid
	}
	affected, err := repo.IncrementTimesUsed(promo.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPromoInvalid
	}
	return repo.CreateRedemption(&models.PromoRedemption{
		PromoCodeID:    promo.ID,
		UserID:         userID,
		OrderID:        orderID,
		DiscountAmount: discount,
	})
}
