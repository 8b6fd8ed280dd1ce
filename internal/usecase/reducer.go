package usecase

import (
	"finboard/internal/domain"
)

// Apply is the state engine: a total function from the current
// aggregate and an action to the next aggregate. The input is never
// mutated; untouched collections are shared between revisions, and an
// action that changes nothing returns the input state as is, which
// lets callers skip redundant persistence.
//
// Lookup misses on update and delete actions are absorbed as no-ops
// rather than signaled; the presentation layer validates inputs before
// dispatching, so the reducer never rejects an action.
func Apply(state domain.FinancialData, action Action) domain.FinancialData {
	switch a := action.(type) {
	case ReplaceState:
		return a.Data

	case AddExpense:
		state.Expenses = appended(state.Expenses, a.Expense)
		return state
	case UpdateExpense:
		state.Expenses, _ = replaced(state.Expenses, func(e domain.Expense) bool { return e.ID == a.Expense.ID }, a.Expense)
		return state
	case DeleteExpense:
		state.Expenses, _ = removed(state.Expenses, func(e domain.Expense) bool { return e.ID == a.ID })
		return state

	case AddRecurringExpense:
		state.RecurringExpenses = appended(state.RecurringExpenses, a.Template)
		return state
	case UpdateRecurringExpense:
		state.RecurringExpenses, _ = replaced(state.RecurringExpenses, func(r domain.RecurringExpense) bool { return r.ID == a.Template.ID }, a.Template)
		return state
	case DeleteRecurringExpense:
		state.RecurringExpenses, _ = removed(state.RecurringExpenses, func(r domain.RecurringExpense) bool { return r.ID == a.ID })
		return state

	case AddDebt:
		state.Debts = appended(state.Debts, a.Debt)
		return state
	case UpdateDebt:
		state.Debts, _ = replaced(state.Debts, func(d domain.Debt) bool { return d.ID == a.Debt.ID }, a.Debt)
		return state
	case DeleteDebt:
		state.Debts, _ = removed(state.Debts, func(d domain.Debt) bool { return d.ID == a.ID })
		return state

	case AddIncome:
		state.Income = appended(state.Income, a.Income)
		return state
	case UpdateIncome:
		state.Income, _ = replaced(state.Income, func(i domain.Income) bool { return i.ID == a.Income.ID }, a.Income)
		return state
	case DeleteIncome:
		state.Income, _ = removed(state.Income, func(i domain.Income) bool { return i.ID == a.ID })
		return state

	case AddAsset:
		state.Assets = appended(state.Assets, a.Asset)
		return state
	case UpdateAsset:
		state.Assets, _ = replaced(state.Assets, func(s domain.Asset) bool { return s.ID == a.Asset.ID }, a.Asset)
		return state
	case DeleteAsset:
		state.Assets, _ = removed(state.Assets, func(s domain.Asset) bool { return s.ID == a.ID })
		return state

	case AddBasket:
		state.InvestmentBaskets = appended(state.InvestmentBaskets, a.Basket)
		return state
	case RenameBasket:
		for i, b := range state.InvestmentBaskets {
			if b.ID == a.ID {
				b.Name = a.Name
				out := make([]domain.InvestmentBasket, len(state.InvestmentBaskets))
				copy(out, state.InvestmentBaskets)
				out[i] = b
				state.InvestmentBaskets = out
				return state
			}
		}
		return state
	case DeleteBasket:
		baskets, ok := removed(state.InvestmentBaskets, func(b domain.InvestmentBasket) bool { return b.ID == a.ID })
		if !ok {
			return state
		}
		state.InvestmentBaskets = baskets
		// Detach member assets so no asset points at a missing basket.
		assets := make([]domain.Asset, len(state.Assets))
		copy(assets, state.Assets)
		for i := range assets {
			if assets[i].BasketID == a.ID {
				assets[i].BasketID = ""
			}
		}
		state.Assets = assets
		return state

	case AddPurchase:
		state.Purchases = appended(state.Purchases, a.Purchase)
		return state
	case UpdatePurchase:
		state.Purchases, _ = replaced(state.Purchases, func(p domain.Purchase) bool { return p.ID == a.Purchase.ID }, a.Purchase)
		return state
	case DeletePurchase:
		state.Purchases, _ = removed(state.Purchases, func(p domain.Purchase) bool { return p.ID == a.ID })
		return state

	case UpdatePurchaseStatus:
		return applyPurchaseStatus(state, a)

	case UpsertIncomeGoal:
		for i, g := range state.IncomeGoals {
			if g.Month == a.Month {
				g.Amount = a.Amount
				out := make([]domain.IncomeGoal, len(state.IncomeGoals))
				copy(out, state.IncomeGoals)
				out[i] = g
				state.IncomeGoals = out
				return state
			}
		}
		state.IncomeGoals = appended(state.IncomeGoals, domain.IncomeGoal{
			ID:     domain.NewID(),
			Month:  a.Month,
			Amount: a.Amount,
		})
		return state
	case DeleteIncomeGoal:
		state.IncomeGoals, _ = removed(state.IncomeGoals, func(g domain.IncomeGoal) bool { return g.Month == a.Month })
		return state

	case UpsertExpensePlan:
		for i, p := range state.ExpensePlans {
			if p.Month == a.Month && p.Mode == a.Mode {
				p.Amount = a.Amount
				out := make([]domain.ExpensePlan, len(state.ExpensePlans))
				copy(out, state.ExpensePlans)
				out[i] = p
				state.ExpensePlans = out
				return state
			}
		}
		state.ExpensePlans = appended(state.ExpensePlans, domain.ExpensePlan{
			ID:     domain.NewID(),
			Month:  a.Month,
			Mode:   a.Mode,
			Amount: a.Amount,
		})
		return state
	case DeleteExpensePlan:
		state.ExpensePlans, _ = removed(state.ExpensePlans, func(p domain.ExpensePlan) bool { return p.Month == a.Month && p.Mode == a.Mode })
		return state

	case LogRecurringExpenses:
		return applyLogRecurring(state, a.Month)

	default:
		return state
	}
}

// applyPurchaseStatus sets the purchase's status and, on a transition
// into Purchased, derives and appends the matching expense from the
// purchase record already present in state. The expense id is
// deterministic so re-marking a purchase cannot log it twice.
func applyPurchaseStatus(state domain.FinancialData, a UpdatePurchaseStatus) domain.FinancialData {
	idx := -1
	for i, p := range state.Purchases {
		if p.ID == a.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return state
	}

	prev := state.Purchases[idx]
	next := prev
	next.Status = a.Status

	out := make([]domain.Purchase, len(state.Purchases))
	copy(out, state.Purchases)
	out[idx] = next
	state.Purchases = out

	if a.Status != domain.StatusPurchased || prev.Status == domain.StatusPurchased {
		return state
	}
	expenseID := domain.PurchaseExpenseID(prev.ID)
	if hasExpenseID(state.Expenses, expenseID) {
		return state
	}
	state.Expenses = appended(state.Expenses, domain.Expense{
		ID:          expenseID,
		Date:        a.Date,
		Category:    prev.Category,
		Amount:      prev.Cost,
		Description: "Purchased: " + prev.Name,
		Mode:        domain.ModeGrowth,
	})
	return state
}

func hasExpenseID(expenses []domain.Expense, id string) bool {
	for _, e := range expenses {
		if e.ID == id {
			return true
		}
	}
	return false
}

// appended copies the slice before growing it so prior aggregate
// revisions keep their own view.
func appended[T any](items []T, v T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, v)
}

// replaced swaps the first matching element for v in a fresh slice.
// With no match it returns the input slice untouched.
func replaced[T any](items []T, match func(T) bool, v T) ([]T, bool) {
	for i := range items {
		if match(items[i]) {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = v
			return out, true
		}
	}
	return items, false
}

// removed filters out the first matching element into a fresh slice.
// With no match it returns the input slice untouched.
func removed[T any](items []T, match func(T) bool) ([]T, bool) {
	for i := range items {
		if match(items[i]) {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			return out, true
		}
	}
	return items, false
}
