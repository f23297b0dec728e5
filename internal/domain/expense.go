package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single logged expenditure.
type Expense struct {
	ID          string
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
}
