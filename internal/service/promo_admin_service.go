package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"
)

// PromoCodeInput 优惠码创建/更新输入
type PromoCodeInput struct {
	Code            string
	DiscountPercent models.Money
	ExpirationDate  time.Time
	UsageLimit      int
	IsActive        bool
}

// PromoAdminService 优惠码管理
type PromoAdminService struct {
	promoRepo repository.PromoCodeRepository
}

// NewPromoAdminService 创建优惠码管理服务
func NewPromoAdminService(promoRepo repository.PromoCodeRepository) *PromoAdminService {
	return &PromoAdminService{promoRepo: promoRepo}
}

func validatePromoInput(input PromoCodeInput) error {
	if strings.TrimSpace(input.Code) == "" {
		return ErrPromoDataInvalid
	}
	if input.DiscountPercent.Decimal.LessThanOrEqual(decimal.Zero) ||
		input.DiscountPercent.Decimal.GreaterThan(decimal.NewFromInt(100)) {
		return ErrPromoDataInvalid
	}
	if input.ExpirationDate.IsZero() {
		return ErrPromoDataInvalid
	}
	if input.UsageLimit < 0 {
		return ErrPromoDataInvalid
	}
	return nil
}

// List 优惠码列表
func (s *PromoAdminService) List(filter repository.PromoCodeListFilter) ([]models.PromoCode, int64, error) {
	return s.promoRepo.List(filter)
}

// Get 优惠码详情
func (s *PromoAdminService) Get(id uint) (*models.PromoCode, error) {
	promo, err := s.promoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, ErrPromoNotFound
	}
	return promo, nil
}

// Create 创建优惠码
func (s *PromoAdminService) Create(input PromoCodeInput) (*models.PromoCode, error) {
	if err := validatePromoInput(input); err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	existing, err := s.promoRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPromoCodeExists
	}
	promo := &models.PromoCode{
		Code:            code,
		DiscountPercent: input.DiscountPercent,
		ExpirationDate:  input.ExpirationDate,
		UsageLimit:      input.UsageLimit,
		IsActive:        input.IsActive,
	}
	if err := s.promoRepo.Create(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// Update 更新优惠码
// 已使用次数不可修改
func (s *PromoAdminService) Update(id uint, input PromoCodeInput) (*models.PromoCode, error) {
	promo, err := s.promoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return nil, ErrPromoNotFound
	}
	if err := validatePromoInput(input); err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code != promo.Code {
		existing, err := s.promoRepo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrPromoCodeExists
		}
	}

	promo.Code = code
	promo.DiscountPercent = input.DiscountPercent
	promo.ExpirationDate = input.ExpirationDate
	promo.UsageLimit = input.UsageLimit
	promo.IsActive = input.IsActive
	if err := s.promoRepo.Update(promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// Delete 删除优惠码
func (s *PromoAdminService) Delete(id uint) error {
	promo, err := s.promoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if promo == nil {
		return ErrPromoNotFound
	}
	return s.promoRepo.Delete(id)
}
