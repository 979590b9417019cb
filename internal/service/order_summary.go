package service

import (
	"strconv"
	"strings"

	"github.com/simplyfresh/simplyfresh/internal/models"
)

// SummarizeOrderDetails 生成订单确认文案，例如 "2 Apples and 1 Fish"
func SummarizeOrderDetails(details models.OrderDetails) string {
	parts := make([]string, 0, len(details))
	for _, line := range details {
		name := line.ItemName
		if line.ItemQuantity != 1 {
			name = pluralize(name)
		}
		parts = append(parts, strconv.Itoa(line.ItemQuantity)+" "+name)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}

// pluralize 英语名词复数，s/sh/ch/x/z 结尾加 es
func pluralize(name string) string {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, "s") ||
		strings.HasSuffix(lower, "sh") ||
		strings.HasSuffix(lower, "ch") ||
		strings.HasSuffix(lower, "x") ||
		strings.HasSuffix(lower, "z") {
		return name + "es"
	}
	return name + "s"
}
