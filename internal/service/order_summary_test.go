package service

import (
	"testing"

	"github.com/simplyfresh/simplyfresh/internal/models"
)

func line(name string, qty int) models.OrderLine {
	return models.OrderLine{ItemName: name, ItemQuantity: qty}
}

func TestSummarizeOrderDetails(t *testing.T) {
	cases := []struct {
		name    string
		details models.OrderDetails
		want    string
	}{
		{"empty", models.OrderDetails{}, ""},
		{"single", models.OrderDetails{line("Apple", 1)}, "1 Apple"},
		{"single plural", models.OrderDetails{line("Apple", 2)}, "2 Apples"},
		{"two items", models.OrderDetails{line("Apple", 2), line("Fish", 1)}, "2 Apples and 1 Fish"},
		{"three items", models.OrderDetails{line("Apple", 2), line("Fish", 1), line("Egg", 12)}, "2 Apples, 1 Fish and 12 Eggs"},
		{"zero quantity plural", models.OrderDetails{line("Apple", 0)}, "0 Apples"},
	}
	for _, tc := range cases {
		if got := SummarizeOrderDetails(tc.details); got != tc.want {
			t.Fatalf("%s: want %q got %q", tc.name, tc.want, got)
		}
	}
}

func TestPluralizeSuffixes(t *testing.T) {
	cases := map[string]string{
		"Apple":  "Apples",
		"Fish":   "Fishes",
		"Box":    "Boxes",
		"Peach":  "Peaches",
		"Glass":  "Glasses",
		"Quiz":   "Quizes",
		"Carrot": "Carrots",
	}
	for in, want := range cases {
		if got := pluralize(in); got != want {
			t.Fatalf("pluralize(%q) want %q got %q", in, want, got)
		}
	}
}
