package usecase

import (
	"finboard/internal/domain"
)

// applyLogRecurring materializes every recurring template due by the
// target month into a dated expense.
//
// Each candidate carries a deterministic id derived from the template
// id and the month, so logging the same month twice appends nothing
// the second time: the operation is idempotent. Deduplicating on the
// id, never on the description, means a manually entered expense with
// a colliding description cannot suppress a template.
//
// Only the expenses collection grows; expenses logged for other
// months and manual entries are never touched. When every candidate
// already exists the input state is returned as is.
func applyLogRecurring(state domain.FinancialData, month domain.MonthKey) domain.FinancialData {
	if !month.Valid() {
		return state
	}

	existing := make(map[string]struct{}, len(state.Expenses))
	for _, e := range state.Expenses {
		existing[e.ID] = struct{}{}
	}

	var fresh []domain.Expense
	for _, tpl := range state.RecurringExpenses {
		if tpl.Frequency != domain.FrequencyMonthly {
			continue
		}
		// Calendar comparison of the month keys; a template with a
		// malformed start month never materializes.
		if !tpl.StartMonth.NotAfter(month) {
			continue
		}
		id := domain.LoggedExpenseID(tpl.ID, month)
		if _, ok := existing[id]; ok {
			continue
		}
		fresh = append(fresh, domain.Expense{
			ID:          id,
			Date:        month.FirstDay(),
			Category:    tpl.Category,
			Amount:      tpl.Amount,
			Description: tpl.Description + " (recurring)",
			Mode:        tpl.Mode,
		})
	}
	if len(fresh) == 0 {
		return state
	}

	out := make([]domain.Expense, 0, len(state.Expenses)+len(fresh))
	out = append(out, state.Expenses...)
	out = append(out, fresh...)
	state.Expenses = out
	return state
}
