package service

import (
	"testing"

	"github.com/simplyfresh/simplyfresh/internal/models"

	"github.com/shopspring/decimal"
)

func money(v float64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromFloat(v))
}

func TestCartTotalEmpty(t *testing.T) {
	total := CartTotal(nil)
	if total.String() != "0.00" {
		t.Fatalf("empty cart total want 0.00 got %s", total)
	}
}

func TestCartTotalSumsLines(t *testing.T) {
	lines := []CartLineDetail{
		{UnitPrice: money(2.50), Quantity: 2}, // 5.00
		{UnitPrice: money(2.50), Quantity: 1}, // 2.50
	}
	total := CartTotal(lines)
	if total.String() != "7.50" {
		t.Fatalf("total want 7.50 got %s", total)
	}
}

func TestLineSubtotalNonPositiveQuantity(t *testing.T) {
	if got := LineSubtotal(money(9.99), 0); got.String() != "0.00" {
		t.Fatalf("zero quantity subtotal want 0.00 got %s", got)
	}
	if got := LineSubtotal(money(9.99), -1); got.String() != "0.00" {
		t.Fatalf("negative quantity subtotal want 0.00 got %s", got)
	}
}

func TestApplyDiscountPercent(t *testing.T) {
	discount, discounted := ApplyDiscountPercent(money(100), money(10))
	if discount.String() != "10.00" {
		t.Fatalf("discount want 10.00 got %s", discount)
	}
	if discounted.String() != "90.00" {
		t.Fatalf("discounted want 90.00 got %s", discounted)
	}
}

func TestApplyDiscountPercentRounding(t *testing.T) {
	// 9.50 * 20% = 1.90
	discount, discounted := ApplyDiscountPercent(money(9.50), money(20))
	if discount.String() != "1.90" {
		t.Fatalf("discount want 1.90 got %s", discount)
	}
	if discounted.String() != "7.60" {
		t.Fatalf("discounted want 7.60 got %s", discounted)
	}
}

func TestApplyDiscountPercentZero(t *testing.T) {
	discount, discounted := ApplyDiscountPercent(money(50), money(0))
	if discount.String() != "0.00" {
		t.Fatalf("discount want 0.00 got %s", discount)
	}
	if discounted.String() != "50.00" {
		t.Fatalf("discounted want 50.00 got %s", discounted)
	}
}

func TestPointsForTotalFloors(t *testing.T) {
	cases := []struct {
		total float64
		want  int64
	}{
		{7.60, 7},
		{7.00, 7},
		{0.99, 0},
		{0, 0},
	}
	for _, c := range cases {
		if got := PointsForTotal(money(c.total), 1); got != c.want {
			t.Fatalf("points for %.2f want %d got %d", c.total, c.want, got)
		}
	}
}
