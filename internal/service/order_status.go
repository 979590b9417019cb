package service

import (
	"strings"

	"github.com/simplyfresh/simplyfresh/internal/constants"
)

// allowedTransitions 订单状态流转表
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
	},
}

// CanTransitionOrderStatus 判断订单状态能否流转
func CanTransitionOrderStatus(from, to string) bool {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))
	if from == "" || to == "" || from == to {
		return false
	}
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// IsValidOrderStatus 判断是否合法状态
func IsValidOrderStatus(status string) bool {
	status = strings.ToLower(strings.TrimSpace(status))
	for _, s := range constants.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
