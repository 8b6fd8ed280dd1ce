package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/domain"
	"finboard/internal/usecase"
)

func TestNetWorth(t *testing.T) {
	tests := []struct {
		name string
		data domain.FinancialData
		want decimal.Decimal
	}{
		{name: "empty aggregate", data: domain.FinancialData{}, want: decimal.Zero},
		{
			name: "assets minus debts",
			data: domain.FinancialData{
				Assets: []domain.Asset{
					{ID: "a1", CurrentValue: dec(5000)},
					{ID: "a2", CurrentValue: dec(2150)},
				},
				Debts: []domain.Debt{
					{ID: "d1", CurrentBalance: dec(1200)},
				},
			},
			want: dec(5950),
		},
		{
			name: "debts can push net worth negative",
			data: domain.FinancialData{
				Assets: []domain.Asset{{ID: "a1", CurrentValue: dec(100)}},
				Debts:  []domain.Debt{{ID: "d1", CurrentBalance: dec(900)}},
			},
			want: dec(-800),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.NetWorth(tt.data)
			assert.Truef(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestGoalProgress(t *testing.T) {
	positive := domain.FinancialData{Assets: []domain.Asset{{CurrentValue: dec(250_000)}}}
	assert.InDelta(t, 0.25, usecase.GoalProgress(positive), 1e-9)

	underwater := domain.FinancialData{Debts: []domain.Debt{{CurrentBalance: dec(50_000)}}}
	assert.Zero(t, usecase.GoalProgress(underwater), "progress clamps below at zero")

	past := domain.FinancialData{Assets: []domain.Asset{{CurrentValue: dec(1_500_000)}}}
	assert.InDelta(t, 1.5, usecase.GoalProgress(past), 1e-9, "progress is unclamped above")
}

func TestMonthlyTotalsUseStringPrefixSemantics(t *testing.T) {
	data := domain.FinancialData{Expenses: []domain.Expense{
		{ID: "e1", Date: "2025-11-30", Amount: dec(100)},
		{ID: "e2", Date: "2025-11-01", Amount: dec(40)},
		{ID: "e3", Date: "2025-12-01", Amount: dec(999)},
		// Unpadded month: falls outside every well-formed month key.
		{ID: "e4", Date: "2025-1-05", Amount: dec(77)},
	}}

	nov := usecase.MonthlyExpenseTotal(data, "2025-11")
	assert.Truef(t, dec(140).Equal(nov), "got %s", nov)

	jan := usecase.MonthlyExpenseTotal(data, "2025-01")
	assert.Truef(t, decimal.Zero.Equal(jan), "unpadded 2025-1-05 must not count toward 2025-01, got %s", jan)
}

func TestDebtPayoffPercent(t *testing.T) {
	debt := domain.Debt{OriginalAmount: dec(2000), CurrentBalance: dec(1200)}
	assert.InDelta(t, 40.0, usecase.DebtPayoffPercent(debt), 1e-9)

	zeroOriginal := domain.Debt{OriginalAmount: decimal.Zero, CurrentBalance: dec(10)}
	assert.Zero(t, usecase.DebtPayoffPercent(zeroOriginal))
}

func TestTotalDebtPayoffPercentAggregatesSumsNotAverages(t *testing.T) {
	data := domain.FinancialData{Debts: []domain.Debt{
		{OriginalAmount: dec(1000), CurrentBalance: decimal.Zero}, // 100% paid
		{OriginalAmount: dec(9000), CurrentBalance: dec(9000)},    // 0% paid
	}}
	// Averaging percentages would say 50; the sums say 10.
	assert.InDelta(t, 10.0, usecase.TotalDebtPayoffPercent(data), 1e-9)
	assert.Zero(t, usecase.TotalDebtPayoffPercent(domain.FinancialData{}))
}

func TestAssetROIPercent(t *testing.T) {
	asset := domain.Asset{AmountInvested: dec(2000), CurrentValue: dec(2150)}
	assert.InDelta(t, 7.5, usecase.AssetROIPercent(asset), 1e-9)

	gifted := domain.Asset{AmountInvested: decimal.Zero, CurrentValue: dec(1234)}
	assert.Zero(t, usecase.AssetROIPercent(gifted), "zero cost basis reports 0, never divides")
}

func TestAllocationByCategory(t *testing.T) {
	data := domain.FinancialData{Assets: []domain.Asset{
		{Category: domain.AssetStocks, CurrentValue: dec(1000)},
		{Category: domain.AssetSavings, CurrentValue: dec(500)},
		{Category: domain.AssetStocks, CurrentValue: dec(250)},
	}}
	slices := usecase.AllocationByCategory(data)
	require.Len(t, slices, 2)
	assert.Equal(t, "Stocks", slices[0].Label)
	assert.True(t, dec(1250).Equal(slices[0].Value))
	assert.Equal(t, "Savings", slices[1].Label)
	assert.True(t, dec(500).Equal(slices[1].Value))
}

func TestAllocationByBasket(t *testing.T) {
	data := domain.FinancialData{
		InvestmentBaskets: []domain.InvestmentBasket{{ID: "b1", Name: "Long term"}},
		Assets: []domain.Asset{
			{Category: domain.AssetStocks, CurrentValue: dec(1000), BasketID: "b1"},
			{Category: domain.AssetCrypto, CurrentValue: dec(200), BasketID: "b1"},
			{Category: domain.AssetSavings, CurrentValue: dec(500)},
		},
	}
	slices := usecase.AllocationByBasket(data)
	require.Len(t, slices, 2)
	assert.Equal(t, "Long term", slices[0].Label)
	assert.True(t, dec(1200).Equal(slices[0].Value))
	assert.Equal(t, "Ungrouped", slices[1].Label)
}

func TestExpenseVariancePositiveMeansUnderBudget(t *testing.T) {
	data := domain.FinancialData{
		ExpensePlans: []domain.ExpensePlan{{ID: "p1", Month: "2025-12", Mode: domain.ModeSurvival, Amount: dec(1500)}},
		Expenses: []domain.Expense{
			{Date: "2025-12-03", Amount: dec(900), Mode: domain.ModeSurvival},
			{Date: "2025-12-09", Amount: dec(100), Mode: domain.ModeGrowth},
		},
	}
	got := usecase.ExpenseVariance(data, "2025-12", domain.ModeSurvival)
	assert.Truef(t, dec(600).Equal(got), "planned 1500 - actual 900, got %s", got)
}

func TestPlannedExpenseTotalFallsBackToRecurringTemplates(t *testing.T) {
	data := domain.FinancialData{RecurringExpenses: []domain.RecurringExpense{
		{ID: "r1", Amount: dec(1400), Mode: domain.ModeSurvival, Frequency: domain.FrequencyMonthly, StartMonth: "2025-11"},
		{ID: "r2", Amount: dec(40), Mode: domain.ModeGrowth, Frequency: domain.FrequencyMonthly, StartMonth: "2025-11"},
		{ID: "r3", Amount: dec(55), Mode: domain.ModeBoth, Frequency: domain.FrequencyMonthly, StartMonth: "2025-11"},
		// Not active yet in the queried month.
		{ID: "r4", Amount: dec(99), Mode: domain.ModeSurvival, Frequency: domain.FrequencyMonthly, StartMonth: "2026-06"},
	}}

	survival := usecase.PlannedExpenseTotal(data, "2025-12", domain.ModeSurvival)
	assert.Truef(t, dec(1455).Equal(survival), "survival + both templates, got %s", survival)

	all := usecase.PlannedExpenseTotal(data, "2025-12", domain.ModeBoth)
	assert.Truef(t, dec(1495).Equal(all), "the Both view counts every active template, got %s", all)

	// An explicit plan wins over the template-driven total.
	data.ExpensePlans = []domain.ExpensePlan{{Month: "2025-12", Mode: domain.ModeSurvival, Amount: dec(2000)}}
	assert.True(t, dec(2000).Equal(usecase.PlannedExpenseTotal(data, "2025-12", domain.ModeSurvival)))
}

func TestIncomeVariancePositiveMeansOverGoal(t *testing.T) {
	data := domain.FinancialData{
		IncomeGoals: []domain.IncomeGoal{{Month: "2025-12", Amount: dec(4000)}},
		Income: []domain.Income{
			{Date: "2025-12-01", Amount: dec(3500)},
			{Date: "2025-12-15", Amount: dec(800)},
		},
	}
	got := usecase.IncomeVariance(data, "2025-12")
	assert.Truef(t, dec(300).Equal(got), "actual 4300 - goal 4000, got %s", got)

	// Without a goal the variance is just the actual income.
	noGoal := usecase.IncomeVariance(data, "2026-01")
	assert.True(t, decimal.Zero.Equal(noGoal))
}

func TestRunwayInputs(t *testing.T) {
	data := domain.FinancialData{
		Assets: []domain.Asset{
			{Category: domain.AssetSavings, CurrentValue: dec(5000)},
			{Category: domain.AssetEmergencyFund, CurrentValue: dec(3000)},
			{Category: domain.AssetStocks, CurrentValue: dec(10000)}, // not liquid
		},
		Income: []domain.Income{
			{Date: "2025-12-01", Amount: dec(3000)},
			{Date: "2025-11-01", Amount: dec(3600)},
			{Date: "2025-09-01", Amount: dec(3300)}, // October had no income and is skipped
			{Date: "2025-08-01", Amount: dec(9999)}, // beyond the trailing three active months
		},
		RecurringExpenses: []domain.RecurringExpense{
			{Amount: dec(1400), Frequency: domain.FrequencyMonthly, StartMonth: "2025-01"},
			{Amount: dec(95), Frequency: domain.FrequencyMonthly, StartMonth: "2025-01"},
		},
		Debts: []domain.Debt{{MinimumPayment: dec(60)}},
	}

	got := usecase.Runway(data)
	assert.True(t, dec(8000).Equal(got.LiquidAssets))
	assert.Truef(t, dec(3300).Equal(got.AvgMonthlyIncome), "mean of 3000, 3600, 3300; got %s", got.AvgMonthlyIncome)
	assert.True(t, dec(1555).Equal(got.MonthlyOutgoings))
	assert.True(t, dec(1745).Equal(got.NetCashFlow))
}

func TestRunwayWithNoIncomeHistory(t *testing.T) {
	got := usecase.Runway(domain.FinancialData{})
	assert.True(t, decimal.Zero.Equal(got.AvgMonthlyIncome))
	assert.True(t, decimal.Zero.Equal(got.NetCashFlow))
}
