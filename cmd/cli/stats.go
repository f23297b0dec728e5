package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/domain"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List spending categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, cat := range tracker.ListCategories(cmd.Context()) {
				fmt.Printf("%-18s %-16s %s\n", cat.Name, cat.Icon, cat.Color)
			}
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show spending statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()
			stats := tracker.Stats(ctx, now)
			categories := tracker.ListCategories(ctx)

			fmt.Printf("Total Expenses: %s\n", formatAmount(stats.Total))
			fmt.Printf("This Month (%s): %s\n", now.Format("January 2006"), formatAmount(stats.MonthlyTotal))

			if len(stats.CategoryTotals) > 0 {
				fmt.Println("\nSpending by Category")
				for _, name := range sortedCategoryNames(stats) {
					amount := stats.CategoryTotals[name]
					icon := "more-horiz"
					if cat, ok := domain.FindCategory(categories, name); ok {
						icon = cat.Icon
					}
					share := domain.CategoryShare(amount, stats.Total)
					fmt.Printf("  %-18s %9s  %5s%%  (%s)\n", name, formatAmount(amount), share.String(), icon)
				}
			}

			if len(stats.Recent) > 0 {
				fmt.Println("\nRecent Expenses")
				for _, exp := range stats.Recent {
					fmt.Printf("  %s  %9s  %s (%s)\n",
						exp.Date.Format(dateLayout), formatAmount(exp.Amount), exp.Description, exp.Category)
				}
			}
			return nil
		},
	}
}

// sortedCategoryNames orders category names by spent amount descending, name
// ascending on ties, to keep output stable.
func sortedCategoryNames(stats domain.Stats) []string {
	names := make([]string, 0, len(stats.CategoryTotals))
	for name := range stats.CategoryTotals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a := stats.CategoryTotals[names[i]]
		b := stats.CategoryTotals[names[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return names[i] < names[j]
	})
	return names
}
