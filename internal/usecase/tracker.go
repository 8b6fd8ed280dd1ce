package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"finboard/internal/domain"
)

// Tracker wraps the reducer with persistence: it loads the aggregate
// on construction, falling back to the seed dataset when nothing
// usable is stored, and persists every transition that actually
// changed state.
//
// There is exactly one logical writer: transitions run synchronously
// to completion, so the Tracker holds no lock of its own.
type Tracker struct {
	repo  StateRepository
	state domain.FinancialData
}

// NewTracker loads the persisted aggregate, or seeds and persists the
// default dataset when the store is empty or structurally incomplete.
func NewTracker(ctx context.Context, repo StateRepository) (*Tracker, error) {
	data, err := repo.Load(ctx)
	switch {
	case errors.Is(err, ErrStateNotFound):
		data = domain.SeedData()
		if err := repo.Save(ctx, data); err != nil {
			return nil, fmt.Errorf("persist seed state: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("load state: %w", err)
	case !data.Complete():
		data = domain.SeedData()
		if err := repo.Save(ctx, data); err != nil {
			return nil, fmt.Errorf("persist seed state: %w", err)
		}
	}
	return &Tracker{repo: repo, state: data}, nil
}

// State is the current aggregate revision. Callers must treat it as
// read-only; it is superseded, never mutated, by Dispatch.
func (t *Tracker) State() domain.FinancialData {
	return t.state
}

// Dispatch applies one action and persists the result. When the
// reducer reports no change the persisted document is left alone.
func (t *Tracker) Dispatch(ctx context.Context, action Action) (domain.FinancialData, error) {
	next := Apply(t.state, action)
	if unchanged(t.state, next) {
		return t.state, nil
	}
	t.state = next
	if err := t.repo.Save(ctx, next); err != nil {
		return next, fmt.Errorf("persist state: %w", err)
	}
	return next, nil
}

// Export serializes the current aggregate verbatim as a portable JSON
// document.
func (t *Tracker) Export() ([]byte, error) {
	out, err := json.MarshalIndent(t.state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export state: %w", err)
	}
	return out, nil
}

// Import replaces the aggregate with an externally supplied document.
// The document must carry the required collections or it is rejected
// with the state untouched; collections it omits entirely keep their
// seed defaults.
func (t *Tracker) Import(ctx context.Context, doc []byte) (domain.FinancialData, error) {
	var imported domain.FinancialData
	if err := json.Unmarshal(doc, &imported); err != nil {
		return t.state, fmt.Errorf("parse import document: %w", err)
	}
	if !imported.Complete() {
		return t.state, domain.ErrIncompleteDocument
	}
	return t.Dispatch(ctx, ReplaceState{Data: domain.Merged(domain.SeedData(), imported)})
}

// unchanged reports whether two revisions are the same revision, by
// collection identity rather than deep comparison: the reducer hands
// back the input slices untouched whenever an action was a no-op.
func unchanged(a, b domain.FinancialData) bool {
	return sameSlice(a.Expenses, b.Expenses) &&
		sameSlice(a.RecurringExpenses, b.RecurringExpenses) &&
		sameSlice(a.Debts, b.Debts) &&
		sameSlice(a.Income, b.Income) &&
		sameSlice(a.Assets, b.Assets) &&
		sameSlice(a.InvestmentBaskets, b.InvestmentBaskets) &&
		sameSlice(a.IncomeGoals, b.IncomeGoals) &&
		sameSlice(a.ExpensePlans, b.ExpensePlans) &&
		sameSlice(a.Purchases, b.Purchases)
}

func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
