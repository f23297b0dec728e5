package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/domain"
)

// Storage keys for the two persisted blobs.
const (
	expensesKey   = "expenses"
	categoriesKey = "categories"
)

// ExpenseUseCase is the record store: it exclusively owns the durable expense
// and category lists. Every mutation is a whole-list read-modify-write cycle
// against the substrate, so all mutations are serialized through one mutex.
// Read-after-write consistency holds within the process; there is no safety
// net for a second writer outside it.
type ExpenseUseCase struct {
	mu       sync.Mutex
	store    KVStore
	idGen    IDGenerator
	notifier ChangeNotifier
	logger   zerolog.Logger
}

// NewExpenseUseCase creates a new ExpenseUseCase. An untyped nil notifier
// disables change notifications; a typed nil pointer stored in the interface
// would pass the nil guard and be invoked.
func NewExpenseUseCase(store KVStore, idGen IDGenerator, notifier ChangeNotifier, logger zerolog.Logger) *ExpenseUseCase {
	return &ExpenseUseCase{
		store:    store,
		idGen:    idGen,
		notifier: notifier,
		logger:   logger,
	}
}

// AddExpenseInput is a draft expense prior to validation.
type AddExpenseInput struct {
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time
}

// UpdateExpenseInput carries the fields to merge over an existing expense.
// Nil fields are left untouched. ID and CreatedAt are never updatable.
type UpdateExpenseInput struct {
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Date        *time.Time
}

// ListExpenses returns all expenses, most-recently-added first. On substrate
// failure or a corrupt payload it degrades to an empty list and logs the
// cause instead of propagating an error.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context) []domain.Expense {
	expenses, err := uc.loadExpenses(ctx)
	if err != nil {
		uc.logger.Error().Err(err).Msg("listing expenses degraded to empty result")
		return []domain.Expense{}
	}
	return expenses
}

// AddExpense validates the draft, assigns a fresh ID and creation timestamp,
// prepends the record and persists the full list. Validation failures happen
// before any I/O; substrate failures come back wrapped in domain.ErrStorage.
func (uc *ExpenseUseCase) AddExpense(ctx context.Context, input AddExpenseInput) (*domain.Expense, error) {
	now := time.Now()
	if err := domain.ValidateDraft(input.Amount, input.Description, input.Category, input.Date, now); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	expenses, err := uc.loadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	expense := domain.Expense{
		ID:          uc.idGen.Generate(),
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Date:        input.Date,
		CreatedAt:   now.UTC(),
	}

	updated := make([]domain.Expense, 0, len(expenses)+1)
	updated = append(updated, expense)
	updated = append(updated, expenses...)

	if err := uc.saveExpenses(ctx, updated); err != nil {
		return nil, err
	}

	uc.logger.Debug().Str("id", expense.ID).Str("category", expense.Category).Msg("expense added")
	uc.notifyChanged()
	return &expense, nil
}

// UpdateExpense merges the provided fields over the stored record and
// persists the full list. A missing ID returns domain.ErrExpenseNotFound.
// Provided fields are validated against the same draft rules as AddExpense.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, id string, input UpdateExpenseInput) error {
	now := time.Now()
	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return err
		}
	}
	if input.Description != nil {
		if err := domain.ValidateDescription(*input.Description); err != nil {
			return err
		}
	}
	if input.Category != nil {
		if err := domain.ValidateCategoryName(*input.Category); err != nil {
			return err
		}
	}
	if input.Date != nil {
		if err := domain.ValidateDate(*input.Date, now); err != nil {
			return err
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	expenses, err := uc.loadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	index := -1
	for i, exp := range expenses {
		if exp.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return domain.ErrExpenseNotFound
	}

	if input.Amount != nil {
		expenses[index].Amount = *input.Amount
	}
	if input.Description != nil {
		expenses[index].Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		expenses[index].Category = *input.Category
	}
	if input.Date != nil {
		expenses[index].Date = *input.Date
	}

	if err := uc.saveExpenses(ctx, expenses); err != nil {
		return err
	}

	uc.logger.Debug().Str("id", id).Msg("expense updated")
	uc.notifyChanged()
	return nil
}

// DeleteExpense removes the record with the matching ID and persists the
// resulting list. Deleting an unknown ID is a no-op, not an error.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	expenses, err := uc.loadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	filtered := make([]domain.Expense, 0, len(expenses))
	for _, exp := range expenses {
		if exp.ID != id {
			filtered = append(filtered, exp)
		}
	}
	if len(filtered) == len(expenses) {
		return nil
	}

	if err := uc.saveExpenses(ctx, filtered); err != nil {
		return err
	}

	uc.logger.Debug().Str("id", id).Msg("expense deleted")
	uc.notifyChanged()
	return nil
}

// ListCategories returns the persisted category set, seeding and persisting
// the defaults when no category store exists yet. Substrate failures degrade
// to the default set; a failed seeding write is logged but not surfaced,
// since this is a read path.
func (uc *ExpenseUseCase) ListCategories(ctx context.Context) []domain.Category {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	payload, ok, err := uc.store.Get(ctx, categoriesKey)
	if err != nil {
		uc.logger.Error().Err(err).Msg("listing categories degraded to defaults")
		return domain.DefaultCategories()
	}

	if !ok {
		defaults := domain.DefaultCategories()
		encoded, err := encodeCategories(defaults)
		if err == nil {
			err = uc.store.Set(ctx, categoriesKey, encoded)
		}
		if err != nil {
			uc.logger.Error().Err(err).Msg("seeding default categories failed")
		}
		return defaults
	}

	categories, err := decodeCategories(payload)
	if err != nil {
		uc.logger.Error().Err(err).Msg("listing categories degraded to defaults")
		return domain.DefaultCategories()
	}
	return categories
}

// Stats recomputes the derived statistics snapshot over the current expense
// list. now anchors the "current month" window.
func (uc *ExpenseUseCase) Stats(ctx context.Context, now time.Time) domain.Stats {
	return domain.ComputeStats(uc.ListExpenses(ctx), now)
}

func (uc *ExpenseUseCase) loadExpenses(ctx context.Context) ([]domain.Expense, error) {
	payload, ok, err := uc.store.Get(ctx, expensesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Expense{}, nil
	}
	return decodeExpenses(payload)
}

func (uc *ExpenseUseCase) saveExpenses(ctx context.Context, expenses []domain.Expense) error {
	encoded, err := encodeExpenses(expenses)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if err := uc.store.Set(ctx, expensesKey, encoded); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

func (uc *ExpenseUseCase) notifyChanged() {
	if uc.notifier != nil {
		uc.notifier.DataChanged()
	}
}
