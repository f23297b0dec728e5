package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentLimit is the number of expenses carried in Stats.Recent.
const RecentLimit = 5

// Stats is the derived aggregate view over the current expense list. It has
// no lifecycle of its own: it is recomputed on demand and never persisted.
type Stats struct {
	Total          decimal.Decimal
	MonthlyTotal   decimal.Decimal
	CategoryTotals map[string]decimal.Decimal
	Recent         []Expense
}

// ComputeStats aggregates expenses into a Stats snapshot. The input must be
// ordered most-recently-created first; Recent takes the head of that order
// unchanged. Month matching compares the local calendar month and year of
// each expense date against now. Amounts are summed as decimals, so the
// totals carry no float drift; rounding happens only at presentation time.
func ComputeStats(expenses []Expense, now time.Time) Stats {
	stats := Stats{
		Total:          decimal.Zero,
		MonthlyTotal:   decimal.Zero,
		CategoryTotals: make(map[string]decimal.Decimal),
		Recent:         []Expense{},
	}

	month := now.Month()
	year := now.Year()

	for _, exp := range expenses {
		stats.Total = stats.Total.Add(exp.Amount)

		if exp.Date.Month() == month && exp.Date.Year() == year {
			stats.MonthlyTotal = stats.MonthlyTotal.Add(exp.Amount)
		}

		stats.CategoryTotals[exp.Category] = stats.CategoryTotals[exp.Category].Add(exp.Amount)
	}

	n := len(expenses)
	if n > RecentLimit {
		n = RecentLimit
	}
	stats.Recent = append(stats.Recent, expenses[:n]...)

	return stats
}

// CategoryShare returns amount as a percentage of total, rounded to one
// decimal place. A zero total yields 0 rather than a division error.
func CategoryShare(amount, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return amount.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
}
