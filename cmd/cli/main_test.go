package main

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/domain"
)

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("12.50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !amount.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("expected 12.5, got %s", amount)
	}

	if _, err := parseAmount("twelve"); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}

func TestParseDate(t *testing.T) {
	date, err := parseDate("2024-03-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.Year() != 2024 || date.Month() != time.March || date.Day() != 3 {
		t.Errorf("unexpected date %s", date)
	}
	if date.Location() != time.Local {
		t.Errorf("dates must be parsed in local time, got %s", date.Location())
	}

	if _, err := parseDate("03/03/2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(decimal.RequireFromString("12.5")); got != "$12.50" {
		t.Errorf("expected $12.50, got %s", got)
	}
	if got := formatAmount(decimal.NewFromInt(3)); got != "$3.00" {
		t.Errorf("expected $3.00, got %s", got)
	}
}

func TestSortedCategoryNames(t *testing.T) {
	stats := domain.Stats{
		CategoryTotals: map[string]decimal.Decimal{
			"Shopping":      decimal.NewFromInt(5),
			"Food & Dining": decimal.NewFromInt(20),
			"Education":     decimal.NewFromInt(5),
		},
	}

	got := sortedCategoryNames(stats)
	want := []string{"Food & Dining", "Education", "Shopping"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}
