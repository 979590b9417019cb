package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/constants"
	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	return NewOrderService(orderRepo, productRepo, nil), db
}

func seedOrder(t *testing.T, db *gorm.DB, order *models.Order) *models.Order {
	t.Helper()
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return order
}

func TestOrderCancelRestoresStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	apple := createTestProduct(t, db, "Apple", 2.50, 3)
	order := seedOrder(t, db, &models.Order{
		OrderNo:  "SF20260829000001",
		UserID:   1,
		Status:   constants.OrderStatusPending,
		Currency: "MYR",
		Details: models.OrderDetails{
			{ItemID: apple.ID, ItemName: apple.Name, ItemPrice: apple.PriceAmount, ItemQuantity: 2},
		},
		TotalAmount:     money(5),
		ShippingAddress: "12 Jalan Ampang",
	})

	updated, err := svc.UpdateStatus(order.ID, constants.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if updated.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled got %s", updated.Status)
	}

	var product models.Product
	if err := db.First(&product, apple.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if product.QuantityInStock != 5 {
		t.Fatalf("stock want 5 got %d", product.QuantityInStock)
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if stored.CanceledAt == nil {
		t.Fatalf("canceled_at should be set")
	}
}

func TestOrderCancelRollsBackWhenRestoreFails(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	apple := createTestProduct(t, db, "Apple", 2.50, 3)
	// 第二行数量非法，回补库存会失败，整单取消必须回滚
	order := seedOrder(t, db, &models.Order{
		OrderNo:  "SF20260829000002",
		UserID:   1,
		Status:   constants.OrderStatusPending,
		Currency: "MYR",
		Details: models.OrderDetails{
			{ItemID: apple.ID, ItemName: apple.Name, ItemPrice: apple.PriceAmount, ItemQuantity: 2},
			{ItemID: apple.ID + 100, ItemName: "Ghost", ItemQuantity: 0},
		},
		TotalAmount:     money(5),
		ShippingAddress: "12 Jalan Ampang",
	})

	if _, err := svc.UpdateStatus(order.ID, constants.OrderStatusCancelled); err == nil {
		t.Fatalf("cancel with bad detail line should fail")
	}

	var stored models.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", stored.Status)
	}
	if stored.CanceledAt != nil {
		t.Fatalf("canceled_at should stay empty after rollback")
	}

	var product models.Product
	if err := db.First(&product, apple.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if product.QuantityInStock != 3 {
		t.Fatalf("stock want 3 got %d", product.QuantityInStock)
	}
}
