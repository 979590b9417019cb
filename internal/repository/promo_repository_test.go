package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupPromoRepositoryTest(t *testing.T) *GormPromoCodeRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:promo_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.PromoCode{}, &models.PromoRedemption{}); err != nil {
		t.Fatalf("migrate promo tables failed: %v", err)
	}
	return NewPromoCodeRepository(db)
}

func createPromo(t *testing.T, repo *GormPromoCodeRepository, code string, usageLimit, timesUsed int) *models.PromoCode {
	t.Helper()
	promo := &models.PromoCode{
		Code:            code,
		DiscountPercent: models.NewMoneyFromDecimal(decimal.NewFromInt(20)),
		ExpirationDate:  time.Now().AddDate(0, 1, 0),
		UsageLimit:      usageLimit,
		TimesUsed:       timesUsed,
		IsActive:        true,
	}
	if err := repo.Create(promo); err != nil {
		t.Fatalf("create promo failed: %v", err)
	}
	return promo
}

func TestPromoRepositoryGetByCode(t *testing.T) {
	repo := setupPromoRepositoryTest(t)
	createPromo(t, repo, "FRESH20", 0, 0)

	promo, err := repo.GetByCode("FRESH20")
	if err != nil {
		t.Fatalf("get by code failed: %v", err)
	}
	if promo == nil {
		t.Fatal("promo should exist")
	}
	if !promo.DiscountPercent.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("discount want 20 got %s", promo.DiscountPercent)
	}

	missing, err := repo.GetByCode("NOPE")
	if err != nil {
		t.Fatalf("get missing code failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing code should return nil, got %+v", missing)
	}
}

func TestPromoRepositoryIncrementTimesUsedGuard(t *testing.T) {
	repo := setupPromoRepositoryTest(t)
	promo := createPromo(t, repo, "ONCE", 1, 0)

	affected, err := repo.IncrementTimesUsed(promo.ID)
	if err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("first increment affected want 1 got %d", affected)
	}

	// 已达上限，守卫条件应拒绝第二次核销
	affected, err = repo.IncrementTimesUsed(promo.ID)
	if err != nil {
		t.Fatalf("second increment failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("second increment affected want 0 got %d", affected)
	}

	got, err := repo.GetByID(promo.ID)
	if err != nil {
		t.Fatalf("get promo failed: %v", err)
	}
	if got.TimesUsed != 1 {
		t.Fatalf("times_used want 1 got %d", got.TimesUsed)
	}
}

func TestPromoRepositoryUnlimitedUsage(t *testing.T) {
	repo := setupPromoRepositoryTest(t)
	promo := createPromo(t, repo, "FOREVER", 0, 0)

	for i := 0; i < 3; i++ {
		affected, err := repo.IncrementTimesUsed(promo.ID)
		if err != nil {
			t.Fatalf("increment %d failed: %v", i, err)
		}
		if affected != 1 {
			t.Fatalf("increment %d affected want 1 got %d", i, affected)
		}
	}

	got, err := repo.GetByID(promo.ID)
	if err != nil {
		t.Fatalf("get promo failed: %v", err)
	}
	if got.TimesUsed != 3 {
		t.Fatalf("times_used want 3 got %d", got.TimesUsed)
	}
}

func TestPromoRepositoryRedemptions(t *testing.T) {
	repo := setupPromoRepositoryTest(t)
	promo := createPromo(t, repo, "TRACKED", 0, 0)

	redemption := &models.PromoRedemption{
		PromoCodeID:    promo.ID,
		UserID:         7,
		OrderID:        99,
		DiscountAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(1.90)),
	}
	if err := repo.CreateRedemption(redemption); err != nil {
		t.Fatalf("create redemption failed: %v", err)
	}

	count, err := repo.CountRedemptionsByUser(promo.ID, 7)
	if err != nil {
		t.Fatalf("count redemptions failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("redemption count want 1 got %d", count)
	}
}
