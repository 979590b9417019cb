package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	return NewCartService(cartRepo, productRepo, 0), db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:            name,
		Category:        "fruits",
		PriceAmount:     models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		QuantityInStock: stock,
		IsActive:        true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestCartAddItemIncrementsQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createTestProduct(t, db, "Apple", 2.50, 100)

	if err := svc.AddItem(1, apple.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddItem(1, apple.ID, 3); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	lines, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("cart lines want 1 got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", lines[0].Quantity)
	}
	if lines[0].Subtotal.String() != "12.50" {
		t.Fatalf("subtotal want 12.50 got %s", lines[0].Subtotal)
	}
}

func TestCartAddItemRejectsInvalidInput(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createTestProduct(t, db, "Apple", 2.50, 100)

	if err := svc.AddItem(1, apple.ID, 0); err != ErrCartQuantityInvalid {
		t.Fatalf("zero quantity want ErrCartQuantityInvalid got %v", err)
	}
	if err := svc.AddItem(1, 9999, 1); err != ErrProductNotAvailable {
		t.Fatalf("missing product want ErrProductNotAvailable got %v", err)
	}
}

func TestCartUpdateQuantityRemovesAtZero(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createTestProduct(t, db, "Apple", 2.50, 100)

	if err := svc.AddItem(1, apple.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity(1, apple.ID, 0); err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}

	lines, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("cart should be empty after zero update, got %d", len(lines))
	}
}

func TestCartUpdateQuantityNegativeRemoves(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createTestProduct(t, db, "Apple", 2.50, 100)

	if err := svc.AddItem(1, apple.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity(1, apple.ID, -3); err != nil {
		t.Fatalf("negative update failed: %v", err)
	}

	lines, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("cart should be empty after negative update, got %d", len(lines))
	}
}

func TestCartUpdateQuantityUnknownProductNoOp(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createTestProduct(t, db, "Apple", 2.50, 100)

	if err := svc.AddItem(1, apple.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	// 不在购物车中的商品应视为无操作
	if err := svc.UpdateQuantity(1, 9999, 3); err != nil {
		t.Fatalf("unknown product update should be no-op, got %v", err)
	}

	lines, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("cart should be unchanged, got %+v", lines)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createTestProduct(t, db, "Apple", 2.50, 100)
	fish := createTestProduct(t, db, "Fish", 4.00, 50)

	if err := svc.AddItem(1, apple.ID, 2); err != nil {
		t.Fatalf("add apple failed: %v", err)
	}
	if err := svc.AddItem(1, fish.ID, 1); err != nil {
		t.Fatalf("add fish failed: %v", err)
	}

	if err := svc.RemoveItem(1, apple.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	lines, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 1 || lines[0].ProductID != fish.ID {
		t.Fatalf("only fish should remain, got %+v", lines)
	}

	if err := svc.Clear(1); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	lines, err = svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("cart should be empty after clear, got %d", len(lines))
	}
}

func TestCartReAddAfterRemoveAndClear(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createTestProduct(t, db, "Apple", 2.50, 100)

	if err := svc.AddItem(1, apple.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.RemoveItem(1, apple.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.AddItem(1, apple.ID, 1); err != nil {
		t.Fatalf("re-add after remove failed: %v", err)
	}

	lines, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("re-added line want quantity 1 got %+v", lines)
	}

	if err := svc.Clear(1); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := svc.AddItem(1, apple.ID, 3); err != nil {
		t.Fatalf("re-add after clear failed: %v", err)
	}
	if err := svc.UpdateQuantity(1, apple.ID, 0); err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}
	if err := svc.AddItem(1, apple.ID, 4); err != nil {
		t.Fatalf("re-add after zero-quantity removal failed: %v", err)
	}

	lines, err = svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 4 {
		t.Fatalf("final line want quantity 4 got %+v", lines)
	}
}

func TestCartListDropsInactiveProducts(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	apple := createTestProduct(t, db, "Apple", 2.50, 100)

	if err := svc.AddItem(1, apple.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", apple.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}

	lines, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("inactive product should be dropped from cart, got %+v", lines)
	}
}
