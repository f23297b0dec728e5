package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/domain"
	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/usecase"
)

const dateLayout = "2006-01-02"

// runMutation runs fn, retrying storage failures with exponential backoff.
// Retry policy lives here in the caller; the record store never retries.
// Validation and not-found failures are permanent.
func runMutation(ctx context.Context, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = 3 * time.Second

	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrStorage) {
			return backoff.Permanent(err)
		}
		appLogger.Warn().Err(err).Msg("storage failure, retrying")
		return err
	}, backoff.WithContext(b, ctx))
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", value)
	}
	return amount, nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}

func formatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func newAddCmd() *cobra.Command {
	var (
		amountStr   string
		description string
		category    string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a new expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}

			date := time.Now()
			if dateStr != "" {
				if date, err = parseDate(dateStr); err != nil {
					return err
				}
			}

			input := usecase.AddExpenseInput{
				Amount:      amount,
				Description: description,
				Category:    category,
				Date:        date,
			}

			var expense *domain.Expense
			err = runMutation(cmd.Context(), func() error {
				var addErr error
				expense, addErr = tracker.AddExpense(cmd.Context(), input)
				return addErr
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added %s  %s  %s (%s)\n",
				expense.ID, formatAmount(expense.Amount), expense.Description, expense.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "amount spent, e.g. 12.50")
	cmd.Flags().StringVar(&description, "description", "", "what the money went to")
	cmd.Flags().StringVar(&category, "category", "", "category name, see 'categories'")
	cmd.Flags().StringVar(&dateStr, "date", "", "expenditure date (YYYY-MM-DD, default today)")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("category")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all expenses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			expenses := tracker.ListExpenses(cmd.Context())
			if len(expenses) == 0 {
				fmt.Println("No expenses recorded.")
				return nil
			}

			for _, exp := range expenses {
				fmt.Printf("%s  %s  %9s  %-18s %s\n",
					exp.ID,
					exp.Date.Format(dateLayout),
					formatAmount(exp.Amount),
					exp.Category,
					exp.Description)
			}
			return nil
		},
	}
}

func newUpdateCmd() *cobra.Command {
	var (
		amountStr   string
		description string
		category    string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.UpdateExpenseInput{}

			if cmd.Flags().Changed("amount") {
				amount, err := parseAmount(amountStr)
				if err != nil {
					return err
				}
				input.Amount = &amount
			}
			if cmd.Flags().Changed("description") {
				input.Description = &description
			}
			if cmd.Flags().Changed("category") {
				input.Category = &category
			}
			if cmd.Flags().Changed("date") {
				date, err := parseDate(dateStr)
				if err != nil {
					return err
				}
				input.Date = &date
			}

			err := runMutation(cmd.Context(), func() error {
				return tracker.UpdateExpense(cmd.Context(), args[0], input)
			})
			if err != nil {
				return err
			}

			fmt.Printf("Updated %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&category, "category", "", "new category name")
	cmd.Flags().StringVar(&dateStr, "date", "", "new expenditure date (YYYY-MM-DD)")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runMutation(cmd.Context(), func() error {
				return tracker.DeleteExpense(cmd.Context(), args[0])
			})
			if err != nil {
				return err
			}

			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
