package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/constants"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.PromoCode{},
		&models.PromoRedemption{},
		&models.PointTransaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	promoRepo := repository.NewPromoCodeRepository(db)
	pointRepo := repository.NewPointRepository(db)
	cartService := NewCartService(cartRepo, productRepo, 0)
	promoService := NewPromoService(promoRepo)

	svc := NewCheckoutService(CheckoutServiceDeps{
		CartService:   cartService,
		PromoService:  promoService,
		CartRepo:      cartRepo,
		ProductRepo:   productRepo,
		OrderRepo:     orderRepo,
		UserRepo:      userRepo,
		PromoRepo:     promoRepo,
		PointRepo:     pointRepo,
		Currency:      "MYR",
		PointsPerUnit: 1,
		OrderNoPrefix: "SF",
	})
	return svc, db
}

func createCheckoutUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	user := &models.User{
		Email:        "aisha@example.com",
		PasswordHash: string(hash),
		FirstName:    "Aisha",
		LastName:     "Rahman",
		Street:       "12 Jalan Melati",
		City:         "Shah Alam",
		PostalCode:   "40100",
		State:        "Selangor",
		Country:      "Malaysia",
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func fillCart(t *testing.T, db *gorm.DB, svc *CheckoutService, userID uint) (apple, fish *models.Product) {
	t.Helper()
	apple = createTestProduct(t, db, "Apple", 2.50, 100)
	fish = createTestProduct(t, db, "Fish", 4.50, 50)
	if err := svc.cartService.AddItem(userID, apple.ID, 2); err != nil {
		t.Fatalf("add apple failed: %v", err)
	}
	if err := svc.cartService.AddItem(userID, fish.ID, 1); err != nil {
		t.Fatalf("add fish failed: %v", err)
	}
	return apple, fish
}

func seedCheckoutPromo(t *testing.T, db *gorm.DB, code string, percent float64) *models.PromoCode {
	t.Helper()
	promo := &models.PromoCode{
		Code:            code,
		DiscountPercent: models.NewMoneyFromDecimal(decimal.NewFromFloat(percent)),
		ExpirationDate:  time.Now().AddDate(0, 1, 0),
		UsageLimit:      10,
		IsActive:        true,
	}
	if err := db.Create(promo).Error; err != nil {
		t.Fatalf("seed promo failed: %v", err)
	}
	return promo
}

func TestCheckoutWithPromo(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutUser(t, db)
	apple, fish := fillCart(t, db, svc, user.ID)
	promo := seedCheckoutPromo(t, db, "FRESH20", 20)

	// 2*2.50 + 1*4.50 = 9.50；八折后 7.60
	result, err := svc.Checkout(CheckoutInput{
		UserID:    user.ID,
		PromoCode: "FRESH20",
		Card:      validCard(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	order := result.Order
	if order.OriginalAmount.String() != "9.50" {
		t.Fatalf("original want 9.50 got %s", order.OriginalAmount)
	}
	if order.DiscountAmount.String() != "1.90" {
		t.Fatalf("discount want 1.90 got %s", order.DiscountAmount)
	}
	if order.TotalAmount.String() != "7.60" {
		t.Fatalf("total want 7.60 got %s", order.TotalAmount)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if order.PromoCodeID == nil || *order.PromoCodeID != promo.ID {
		t.Fatalf("promo id missing on order: %+v", order.PromoCodeID)
	}
	if len(order.Details) != 2 {
		t.Fatalf("details want 2 lines got %d", len(order.Details))
	}
	if result.Summary != "2 Apples and 1 Fish" {
		t.Fatalf("summary want %q got %q", "2 Apples and 1 Fish", result.Summary)
	}
	if result.PointsAwarded != 7 {
		t.Fatalf("points want 7 got %d", result.PointsAwarded)
	}

	// 购物车应已清空
	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	if cartCount != 0 {
		t.Fatalf("cart should be empty after checkout, got %d", cartCount)
	}

	// 优惠码使用次数 +1
	var gotPromo models.PromoCode
	db.First(&gotPromo, promo.ID)
	if gotPromo.TimesUsed != 1 {
		t.Fatalf("times_used want 1 got %d", gotPromo.TimesUsed)
	}

	// 积分余额与流水
	var gotUser models.User
	db.First(&gotUser, user.ID)
	if gotUser.PointBalance != 7 {
		t.Fatalf("point balance want 7 got %d", gotUser.PointBalance)
	}
	var txns []models.PointTransaction
	db.Where("user_id = ?", user.ID).Find(&txns)
	if len(txns) != 1 {
		t.Fatalf("point txn count want 1 got %d", len(txns))
	}
	if txns[0].BalanceAfter != gotUser.PointBalance {
		t.Fatalf("balance_after want %d got %d", gotUser.PointBalance, txns[0].BalanceAfter)
	}

	// 库存扣减
	var gotApple, gotFish models.Product
	db.First(&gotApple, apple.ID)
	db.First(&gotFish, fish.ID)
	if gotApple.QuantityInStock != 98 {
		t.Fatalf("apple stock want 98 got %d", gotApple.QuantityInStock)
	}
	if gotFish.QuantityInStock != 49 {
		t.Fatalf("fish stock want 49 got %d", gotFish.QuantityInStock)
	}
}

func TestCheckoutWithoutPromo(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutUser(t, db)
	fillCart(t, db, svc, user.ID)

	result, err := svc.Checkout(CheckoutInput{UserID: user.ID, Card: validCard()})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if result.Order.TotalAmount.String() != "9.50" {
		t.Fatalf("total want 9.50 got %s", result.Order.TotalAmount)
	}
	if result.Order.DiscountAmount.String() != "0.00" {
		t.Fatalf("discount want 0.00 got %s", result.Order.DiscountAmount)
	}
	if result.PointsAwarded != 9 {
		t.Fatalf("points want 9 got %d", result.PointsAwarded)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutUser(t, db)

	if _, err := svc.Checkout(CheckoutInput{UserID: user.ID, Card: validCard()}); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("empty cart want ErrCartEmpty got %v", err)
	}
}

func TestCheckoutInvalidCardNoMutation(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutUser(t, db)
	fillCart(t, db, svc, user.ID)

	card := validCard()
	card.Number = "1234"
	if _, err := svc.Checkout(CheckoutInput{UserID: user.ID, Card: card}); !errors.Is(err, ErrCardNumberInvalid) {
		t.Fatalf("bad card want ErrCardNumberInvalid got %v", err)
	}

	// 校验失败不得产生任何副作用
	var orderCount, cartCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	if orderCount != 0 {
		t.Fatalf("no order should exist, got %d", orderCount)
	}
	if cartCount != 2 {
		t.Fatalf("cart should be untouched, got %d items", cartCount)
	}
}

func TestCheckoutInvalidPromoAborts(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutUser(t, db)
	fillCart(t, db, svc, user.ID)

	if _, err := svc.Checkout(CheckoutInput{
		UserID:    user.ID,
		PromoCode: "GHOST",
		Card:      validCard(),
	}); !errors.Is(err, ErrPromoInvalid) {
		t.Fatalf("unknown promo want ErrPromoInvalid got %v", err)
	}

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Fatalf("no order should exist, got %d", orderCount)
	}
}

func TestCheckoutStockInsufficientRollsBack(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutUser(t, db)
	scarce := createTestProduct(t, db, "Durian", 30.00, 1)
	if err := svc.cartService.AddItem(user.ID, scarce.ID, 2); err != nil {
		t.Fatalf("add durian failed: %v", err)
	}

	if _, err := svc.Checkout(CheckoutInput{UserID: user.ID, Card: validCard()}); !errors.Is(err, ErrStockInsufficient) {
		t.Fatalf("want ErrStockInsufficient got %v", err)
	}

	// 事务回滚：订单不存在、购物车保留、库存不变
	var orderCount, cartCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	if orderCount != 0 || cartCount != 1 {
		t.Fatalf("rollback expected, orders=%d cart=%d", orderCount, cartCount)
	}
	var gotScarce models.Product
	db.First(&gotScarce, scarce.ID)
	if gotScarce.QuantityInStock != 1 {
		t.Fatalf("stock should be unchanged, got %d", gotScarce.QuantityInStock)
	}
}

func TestCheckoutMissingShippingAddress(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.DefaultCost)
	user := &models.User{
		Email:        "noaddr@example.com",
		PasswordHash: string(hash),
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	fillCart(t, db, svc, user.ID)

	if _, err := svc.Checkout(CheckoutInput{UserID: user.ID, Card: validCard()}); !errors.Is(err, ErrShippingRequired) {
		t.Fatalf("want ErrShippingRequired got %v", err)
	}

	// 传入地址则可下单
	result, err := svc.Checkout(CheckoutInput{
		UserID:          user.ID,
		ShippingAddress: "88 Jalan Ampang, Kuala Lumpur",
		Card:            validCard(),
	})
	if err != nil {
		t.Fatalf("checkout with explicit address failed: %v", err)
	}
	if result.Order.ShippingAddress != "88 Jalan Ampang, Kuala Lumpur" {
		t.Fatalf("shipping address mismatch: %s", result.Order.ShippingAddress)
	}
}

func TestCheckoutPreviewRecomputesPromo(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutUser(t, db)
	apple, _ := fillCart(t, db, svc, user.ID)
	seedCheckoutPromo(t, db, "FRESH20", 20)

	preview, err := svc.Preview(user.ID, "FRESH20")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if preview.TotalAmount.String() != "7.60" {
		t.Fatalf("preview total want 7.60 got %s", preview.TotalAmount)
	}

	// 购物车变化后折扣基于新总价重新计算
	if err := svc.cartService.AddItem(user.ID, apple.ID, 2); err != nil {
		t.Fatalf("add more apples failed: %v", err)
	}
	preview, err = svc.Preview(user.ID, "FRESH20")
	if err != nil {
		t.Fatalf("second preview failed: %v", err)
	}
	// 4*2.50 + 4.50 = 14.50；八折后 11.60
	if preview.TotalAmount.String() != "11.60" {
		t.Fatalf("recomputed total want 11.60 got %s", preview.TotalAmount)
	}
	if preview.PointsEstimate != 11 {
		t.Fatalf("points estimate want 11 got %d", preview.PointsEstimate)
	}
}
