package usecase

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"finboard/internal/domain"
)

// NetWorthTarget is the fixed goal net worth against which overall
// progress is measured.
var NetWorthTarget = decimal.NewFromInt(1_000_000)

// NetWorth is total asset value minus total debt balance.
func NetWorth(d domain.FinancialData) decimal.Decimal {
	total := decimal.Zero
	for _, a := range d.Assets {
		total = total.Add(a.CurrentValue)
	}
	for _, debt := range d.Debts {
		total = total.Sub(debt.CurrentBalance)
	}
	return total
}

// GoalProgress is the ratio of net worth to the fixed target, clamped
// below at zero. It can exceed 1 once the target is passed.
func GoalProgress(d domain.FinancialData) float64 {
	ratio, _ := NetWorth(d).Div(NetWorthTarget).Float64()
	if ratio < 0 {
		return 0
	}
	return ratio
}

// MonthlyExpenseTotal sums expenses whose date string starts with the
// month key. Matching is a plain string prefix on the YYYY-MM-DD date,
// not a calendar-range comparison; an unpadded date like 2025-1-05
// deliberately falls outside every well-formed month key.
func MonthlyExpenseTotal(d domain.FinancialData, month domain.MonthKey) decimal.Decimal {
	total := decimal.Zero
	for _, e := range d.Expenses {
		if strings.HasPrefix(e.Date, string(month)) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// MonthlyIncomeTotal sums income with the same prefix semantics as
// MonthlyExpenseTotal.
func MonthlyIncomeTotal(d domain.FinancialData, month domain.MonthKey) decimal.Decimal {
	total := decimal.Zero
	for _, in := range d.Income {
		if strings.HasPrefix(in.Date, string(month)) {
			total = total.Add(in.Amount)
		}
	}
	return total
}

// DebtPayoffPercent is how much of a debt's original amount has been
// repaid, as a percentage. A zero original amount reads as fully paid
// off territory and reports 0 rather than dividing.
func DebtPayoffPercent(debt domain.Debt) float64 {
	if debt.OriginalAmount.IsZero() {
		return 0
	}
	ratio, _ := debt.CurrentBalance.Div(debt.OriginalAmount).Float64()
	return (1 - ratio) * 100
}

// TotalDebtPayoffPercent aggregates payoff over the sum of originals
// versus the sum of current balances, not the average of per-debt
// percentages.
func TotalDebtPayoffPercent(d domain.FinancialData) float64 {
	original := decimal.Zero
	current := decimal.Zero
	for _, debt := range d.Debts {
		original = original.Add(debt.OriginalAmount)
		current = current.Add(debt.CurrentBalance)
	}
	if original.IsZero() {
		return 0
	}
	ratio, _ := current.Div(original).Float64()
	return (1 - ratio) * 100
}

// AssetROIPercent is the return on an asset against its cost basis,
// guarded to 0 when nothing was invested.
func AssetROIPercent(a domain.Asset) float64 {
	if a.AmountInvested.IsZero() {
		return 0
	}
	ratio, _ := a.CurrentValue.Sub(a.AmountInvested).Div(a.AmountInvested).Float64()
	return ratio * 100
}

// AllocationSlice is one labeled group of an allocation breakdown.
type AllocationSlice struct {
	Label string
	Value decimal.Decimal
}

// AllocationByCategory groups asset value per asset category, in
// first-seen order so proportion displays stay stable across
// revisions.
func AllocationByCategory(d domain.FinancialData) []AllocationSlice {
	index := make(map[string]int)
	var slices []AllocationSlice
	for _, a := range d.Assets {
		label := string(a.Category)
		if i, ok := index[label]; ok {
			slices[i].Value = slices[i].Value.Add(a.CurrentValue)
			continue
		}
		index[label] = len(slices)
		slices = append(slices, AllocationSlice{Label: label, Value: a.CurrentValue})
	}
	return slices
}

// AllocationByBasket groups asset value per investment basket. Assets
// outside any basket fall into an "Ungrouped" slice.
func AllocationByBasket(d domain.FinancialData) []AllocationSlice {
	names := make(map[string]string, len(d.InvestmentBaskets))
	for _, b := range d.InvestmentBaskets {
		names[b.ID] = b.Name
	}
	index := make(map[string]int)
	var slices []AllocationSlice
	for _, a := range d.Assets {
		label, ok := names[a.BasketID]
		if !ok || a.BasketID == "" {
			label = "Ungrouped"
		}
		if i, seen := index[label]; seen {
			slices[i].Value = slices[i].Value.Add(a.CurrentValue)
			continue
		}
		index[label] = len(slices)
		slices = append(slices, AllocationSlice{Label: label, Value: a.CurrentValue})
	}
	return slices
}

// modeMatches reports whether an entry tagged entryMode counts toward
// a view filtered by filter. Both-tagged entries count in every view,
// and the Both view counts every entry.
func modeMatches(entryMode, filter domain.ExpenseMode) bool {
	return filter == domain.ModeBoth || entryMode == domain.ModeBoth || entryMode == filter
}

// PlannedExpenseTotal is the budgeted spend for a (month, mode) pair.
// An explicit plan wins; without one the planned total is driven by
// the recurring templates active in that month for the mode.
func PlannedExpenseTotal(d domain.FinancialData, month domain.MonthKey, mode domain.ExpenseMode) decimal.Decimal {
	for _, p := range d.ExpensePlans {
		if p.Month == month && p.Mode == mode {
			return p.Amount
		}
	}
	total := decimal.Zero
	for _, tpl := range d.RecurringExpenses {
		if tpl.Frequency != domain.FrequencyMonthly {
			continue
		}
		if !tpl.StartMonth.NotAfter(month) {
			continue
		}
		if modeMatches(tpl.Mode, mode) {
			total = total.Add(tpl.Amount)
		}
	}
	return total
}

// ExpenseVariance is planned minus actual spend for a (month, mode)
// pair; positive means under budget.
func ExpenseVariance(d domain.FinancialData, month domain.MonthKey, mode domain.ExpenseMode) decimal.Decimal {
	actual := decimal.Zero
	for _, e := range d.Expenses {
		if strings.HasPrefix(e.Date, string(month)) && modeMatches(e.Mode, mode) {
			actual = actual.Add(e.Amount)
		}
	}
	return PlannedExpenseTotal(d, month, mode).Sub(actual)
}

// IncomeVariance is actual income minus the month's goal; positive
// means over goal. The sign convention is opposite to ExpenseVariance
// on purpose.
func IncomeVariance(d domain.FinancialData, month domain.MonthKey) decimal.Decimal {
	goal := decimal.Zero
	for _, g := range d.IncomeGoals {
		if g.Month == month {
			goal = g.Amount
			break
		}
	}
	return MonthlyIncomeTotal(d, month).Sub(goal)
}

// RunwayInputs are the figures handed to the insight collaborator for
// its depletion narrative; the engine itself never computes months
// remaining.
type RunwayInputs struct {
	LiquidAssets     decimal.Decimal
	AvgMonthlyIncome decimal.Decimal
	MonthlyOutgoings decimal.Decimal
	NetCashFlow      decimal.Decimal
}

// Runway derives the projection inputs.
//
// Liquid assets are the Savings and EmergencyFund positions. Average
// income is the mean of the last three calendar months that saw any
// income at all; silent months are skipped, not averaged in as zero.
// Outgoings are recurring template amounts plus debt minimum payments.
func Runway(d domain.FinancialData) RunwayInputs {
	liquid := decimal.Zero
	for _, a := range d.Assets {
		if a.Category == domain.AssetSavings || a.Category == domain.AssetEmergencyFund {
			liquid = liquid.Add(a.CurrentValue)
		}
	}

	byMonth := make(map[string]decimal.Decimal)
	for _, in := range d.Income {
		if len(in.Date) < len("2006-01") {
			continue
		}
		key := in.Date[:len("2006-01")]
		byMonth[key] = byMonth[key].Add(in.Amount)
	}
	months := make([]string, 0, len(byMonth))
	for key, total := range byMonth {
		if total.IsZero() {
			continue
		}
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	if len(months) > 3 {
		months = months[:3]
	}
	avgIncome := decimal.Zero
	if len(months) > 0 {
		sum := decimal.Zero
		for _, key := range months {
			sum = sum.Add(byMonth[key])
		}
		avgIncome = sum.Div(decimal.NewFromInt(int64(len(months))))
	}

	outgoings := decimal.Zero
	for _, tpl := range d.RecurringExpenses {
		if tpl.Frequency == domain.FrequencyMonthly {
			outgoings = outgoings.Add(tpl.Amount)
		}
	}
	for _, debt := range d.Debts {
		outgoings = outgoings.Add(debt.MinimumPayment)
	}

	return RunwayInputs{
		LiquidAssets:     liquid,
		AvgMonthlyIncome: avgIncome,
		MonthlyOutgoings: outgoings,
		NetCashFlow:      avgIncome.Sub(outgoings),
	}
}
