package service

import (
	"github.com/shopspring/decimal"

	"github.com/simplyfresh/simplyfresh/internal/models"
)

// LineSubtotal 计算单行小计（单价 × 数量，保留 2 位小数）
func LineSubtotal(unitPrice models.Money, quantity int) models.Money {
	if quantity <= 0 {
		return models.NewMoneyFromDecimal(decimal.Zero)
	}
	return models.NewMoneyFromDecimal(unitPrice.Decimal.Mul(decimal.NewFromInt(int64(quantity))))
}

// CartTotal 汇总购物车行小计
func CartTotal(lines []CartLineDetail) models.Money {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(LineSubtotal(line.UnitPrice, line.Quantity).Decimal)
	}
	return models.NewMoneyFromDecimal(total)
}

// ApplyDiscountPercent 按百分比折扣计算优惠金额与折后价
func ApplyDiscountPercent(total models.Money, percent models.Money) (discount models.Money, discounted models.Money) {
	if percent.Decimal.LessThanOrEqual(decimal.Zero) {
		return models.NewMoneyFromDecimal(decimal.Zero), total
	}
	ratio := percent.Decimal.Div(decimal.NewFromInt(100))
	raw := total.Decimal.Mul(ratio)
	discount = models.NewMoneyFromDecimal(raw)
	discounted = models.NewMoneyFromDecimal(total.Decimal.Sub(discount.Decimal))
	return discount, discounted
}

// PointsForTotal 按实付金额计算奖励积分（向下取整）
func PointsForTotal(total models.Money, pointsPerUnit int64) int64 {
	if pointsPerUnit <= 0 {
		pointsPerUnit = 1
	}
	if total.Decimal.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return total.Decimal.Floor().IntPart() * pointsPerUnit
}
