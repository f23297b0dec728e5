package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/domain"
)

// Persisted wire format: whole-document JSON arrays. Amounts travel as bare
// JSON numbers and round-trip through json.Number so no float conversion
// happens on either side. Dates are RFC 3339 strings.

type storedExpense struct {
	ID          string      `json:"id"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
	CreatedAt   string      `json:"createdAt"`
}

type storedCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func encodeExpenses(expenses []domain.Expense) (string, error) {
	stored := make([]storedExpense, 0, len(expenses))
	for _, exp := range expenses {
		stored = append(stored, storedExpense{
			ID:          exp.ID,
			Amount:      json.Number(exp.Amount.String()),
			Description: exp.Description,
			Category:    exp.Category,
			Date:        exp.Date.Format(time.RFC3339),
			CreatedAt:   exp.CreatedAt.Format(time.RFC3339),
		})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("encode expenses: %w", err)
	}
	return string(data), nil
}

func decodeExpenses(payload string) ([]domain.Expense, error) {
	var stored []storedExpense
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}

	expenses := make([]domain.Expense, 0, len(stored))
	for _, s := range stored {
		amount, err := decimal.NewFromString(s.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("decode expense %s: amount %q: %w", s.ID, s.Amount, err)
		}

		date, err := time.Parse(time.RFC3339, s.Date)
		if err != nil {
			return nil, fmt.Errorf("decode expense %s: date %q: %w", s.ID, s.Date, err)
		}

		createdAt, err := time.Parse(time.RFC3339, s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("decode expense %s: createdAt %q: %w", s.ID, s.CreatedAt, err)
		}

		expenses = append(expenses, domain.Expense{
			ID:          s.ID,
			Amount:      amount,
			Description: s.Description,
			Category:    s.Category,
			Date:        date,
			CreatedAt:   createdAt,
		})
	}
	return expenses, nil
}

func encodeCategories(categories []domain.Category) (string, error) {
	stored := make([]storedCategory, 0, len(categories))
	for _, c := range categories {
		stored = append(stored, storedCategory(c))
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("encode categories: %w", err)
	}
	return string(data), nil
}

func decodeCategories(payload string) ([]domain.Category, error) {
	var stored []storedCategory
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(stored))
	for _, s := range stored {
		categories = append(categories, domain.Category(s))
	}
	return categories, nil
}
