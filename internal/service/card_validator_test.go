package service

import (
	"errors"
	"testing"
	"time"
)

func validCard() CardDetails {
	return CardDetails{
		HolderName: "Aisha Binti Rahman",
		Number:     "4556737586899855",
		Expiry:     "12/30",
		CVV:        "123",
	}
}

func TestValidateCardAccepts(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	card := validCard()
	if err := ValidateCard(card, now); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}

	// 卡号允许空格分组
	card.Number = "4556 7375 8689 9855"
	if err := ValidateCard(card, now); err != nil {
		t.Fatalf("spaced number rejected: %v", err)
	}

	// 4 位 CVV 同样合法
	card.CVV = "1234"
	if err := ValidateCard(card, now); err != nil {
		t.Fatalf("4-digit cvv rejected: %v", err)
	}

	// 当月到期当月仍可用
	card.Expiry = "06/26"
	if err := ValidateCard(card, now); err != nil {
		t.Fatalf("current-month expiry rejected: %v", err)
	}
}

func TestValidateCardRejects(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(*CardDetails)
		want   error
	}{
		{"empty name", func(c *CardDetails) { c.HolderName = "   " }, ErrCardNameInvalid},
		{"short number", func(c *CardDetails) { c.Number = "123456789012345" }, ErrCardNumberInvalid},
		{"long number", func(c *CardDetails) { c.Number = "12345678901234567" }, ErrCardNumberInvalid},
		{"alpha number", func(c *CardDetails) { c.Number = "4556abcd56899855" }, ErrCardNumberInvalid},
		{"bad expiry format", func(c *CardDetails) { c.Expiry = "13/30" }, ErrCardExpiryInvalid},
		{"missing slash", func(c *CardDetails) { c.Expiry = "1230" }, ErrCardExpiryInvalid},
		{"past expiry", func(c *CardDetails) { c.Expiry = "05/26" }, ErrCardExpired},
		{"short cvv", func(c *CardDetails) { c.CVV = "12" }, ErrCardCVVInvalid},
		{"long cvv", func(c *CardDetails) { c.CVV = "12345" }, ErrCardCVVInvalid},
		{"alpha cvv", func(c *CardDetails) { c.CVV = "12a" }, ErrCardCVVInvalid},
	}

	for _, tc := range cases {
		card := validCard()
		tc.mutate(&card)
		if err := ValidateCard(card, now); !errors.Is(err, tc.want) {
			t.Fatalf("%s: want %v got %v", tc.name, tc.want, err)
		}
	}
}
