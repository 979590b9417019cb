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

func setupCartRepositoryTest(t *testing.T) *GormCartRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartItem{}); err != nil {
		t.Fatalf("migrate cart_items failed: %v", err)
	}
	return NewCartRepository(db)
}

func TestCartRepositoryCreateAndList(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	item := &models.CartItem{
		UserID:    1,
		ProductID: 10,
		Name:      "Apple",
		UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(2.50)),
		Quantity:  2,
	}
	if err := repo.Create(item); err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	items, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart len want 1 got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", items[0].Quantity)
	}

	other, err := repo.ListByUser(2)
	if err != nil {
		t.Fatalf("list other cart failed: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("other user cart should be empty, got %d", len(other))
	}
}

func TestCartRepositoryUpdateQuantityAndDelete(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	item := &models.CartItem{UserID: 1, ProductID: 10, Name: "Fish", Quantity: 1}
	if err := repo.Create(item); err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	if err := repo.UpdateQuantity(1, 10, 5); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	got, err := repo.GetByUserAndProduct(1, 10)
	if err != nil {
		t.Fatalf("get cart item failed: %v", err)
	}
	if got == nil || got.Quantity != 5 {
		t.Fatalf("quantity want 5 got %+v", got)
	}

	if err := repo.DeleteByUserAndProduct(1, 10); err != nil {
		t.Fatalf("delete cart item failed: %v", err)
	}
	got, err = repo.GetByUserAndProduct(1, 10)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if got != nil {
		t.Fatalf("item should be gone after delete, got %+v", got)
	}
}

func TestCartRepositoryClearByUser(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	for _, pid := range []uint{10, 11, 12} {
		if err := repo.Create(&models.CartItem{UserID: 1, ProductID: pid, Name: "x", Quantity: 1}); err != nil {
			t.Fatalf("create cart item failed: %v", err)
		}
	}
	if err := repo.Create(&models.CartItem{UserID: 2, ProductID: 10, Name: "x", Quantity: 1}); err != nil {
		t.Fatalf("create other user item failed: %v", err)
	}

	if err := repo.ClearByUser(1); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}

	items, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart should be empty after clear, got %d", len(items))
	}

	other, err := repo.ListByUser(2)
	if err != nil {
		t.Fatalf("list other cart failed: %v", err)
	}
	if len(other) != 1 {
		t.Fatalf("other user cart should be untouched, got %d", len(other))
	}
}
