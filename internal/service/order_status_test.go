package service

import (
	"testing"

	"github.com/simplyfresh/simplyfresh/internal/constants"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusShipped, true},
		{constants.OrderStatusPending, constants.OrderStatusCancelled, true},
		{constants.OrderStatusShipped, constants.OrderStatusDelivered, true},
		{constants.OrderStatusPending, constants.OrderStatusDelivered, false},
		{constants.OrderStatusShipped, constants.OrderStatusCancelled, false},
		{constants.OrderStatusDelivered, constants.OrderStatusShipped, false},
		{constants.OrderStatusCancelled, constants.OrderStatusPending, false},
		{constants.OrderStatusPending, constants.OrderStatusPending, false},
		{"", constants.OrderStatusShipped, false},
	}
	for _, tc := range cases {
		if got := CanTransitionOrderStatus(tc.from, tc.to); got != tc.want {
			t.Fatalf("transition %s -> %s want %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestCanTransitionOrderStatusNormalizesInput(t *testing.T) {
	if !CanTransitionOrderStatus(" Pending ", "SHIPPED") {
		t.Fatal("transition should normalize case and whitespace")
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range constants.OrderStatuses {
		if !IsValidOrderStatus(s) {
			t.Fatalf("status %s should be valid", s)
		}
	}
	if IsValidOrderStatus("paid") {
		t.Fatal("unknown status should be invalid")
	}
}
