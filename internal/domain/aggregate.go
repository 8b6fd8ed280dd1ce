package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrIncompleteDocument rejects imported documents missing any of the
// required top-level collections.
var ErrIncompleteDocument = errors.New("document is missing required collections")

// FinancialData is the single root aggregate. It owns every entity
// collection and is persisted and restored as one JSON document.
// Values returned by the reducer are never mutated in place; a
// superseded aggregate stays valid as immutable history.
type FinancialData struct {
	Expenses          []Expense          `json:"expenses"`
	RecurringExpenses []RecurringExpense `json:"recurringExpenses"`
	Debts             []Debt             `json:"debts"`
	Income            []Income           `json:"income"`
	Assets            []Asset            `json:"assets"`
	InvestmentBaskets []InvestmentBasket `json:"investmentBaskets"`
	IncomeGoals       []IncomeGoal       `json:"incomeGoals"`
	ExpensePlans      []ExpensePlan      `json:"expensePlans"`
	Purchases         []Purchase         `json:"purchases"`
}

// Complete reports whether the aggregate carries the collections an
// imported document must supply before it is accepted: expenses,
// debts, income and assets. The remaining collections are optional
// and filled from seed defaults on merge.
func (d FinancialData) Complete() bool {
	return d.Expenses != nil && d.Debts != nil && d.Income != nil && d.Assets != nil
}

// Merged layers an imported aggregate over seed defaults: any
// collection absent from the import keeps the seed value. The merge is
// shallow per collection, never per record.
func Merged(seed, imported FinancialData) FinancialData {
	out := imported
	if out.Expenses == nil {
		out.Expenses = seed.Expenses
	}
	if out.RecurringExpenses == nil {
		out.RecurringExpenses = seed.RecurringExpenses
	}
	if out.Debts == nil {
		out.Debts = seed.Debts
	}
	if out.Income == nil {
		out.Income = seed.Income
	}
	if out.Assets == nil {
		out.Assets = seed.Assets
	}
	if out.InvestmentBaskets == nil {
		out.InvestmentBaskets = seed.InvestmentBaskets
	}
	if out.IncomeGoals == nil {
		out.IncomeGoals = seed.IncomeGoals
	}
	if out.ExpensePlans == nil {
		out.ExpensePlans = seed.ExpensePlans
	}
	if out.Purchases == nil {
		out.Purchases = seed.Purchases
	}
	return out
}

// SeedData is the fixed starter aggregate used when nothing has been
// persisted yet. Three monthly templates begin in 2025-11.
func SeedData() FinancialData {
	return FinancialData{
		Expenses: []Expense{
			{
				ID:          "seed-exp-1",
				Date:        "2025-11-08",
				Category:    CategoryFood,
				Amount:      decimal.NewFromInt(82),
				Description: "Weekly groceries",
				Mode:        ModeSurvival,
			},
		},
		RecurringExpenses: []RecurringExpense{
			{
				ID:          "seed-rec-rent",
				Description: "Rent",
				Amount:      decimal.NewFromInt(1400),
				Category:    CategoryHousing,
				Mode:        ModeSurvival,
				Frequency:   FrequencyMonthly,
				StartMonth:  "2025-11",
			},
			{
				ID:          "seed-rec-internet",
				Description: "Internet",
				Amount:      decimal.NewFromInt(55),
				Category:    CategoryUtilities,
				Mode:        ModeSurvival,
				Frequency:   FrequencyMonthly,
				StartMonth:  "2025-11",
			},
			{
				ID:          "seed-rec-gym",
				Description: "Gym membership",
				Amount:      decimal.NewFromInt(40),
				Category:    CategoryHealth,
				Mode:        ModeGrowth,
				Frequency:   FrequencyMonthly,
				StartMonth:  "2025-11",
			},
		},
		Debts: []Debt{
			{
				ID:             "seed-debt-card",
				Name:           "Credit card",
				OriginalAmount: decimal.NewFromInt(2000),
				CurrentBalance: decimal.NewFromInt(1200),
				InterestRate:   19.9,
				MinimumPayment: decimal.NewFromInt(60),
			},
		},
		Income: []Income{
			{
				ID:          "seed-inc-1",
				Date:        "2025-11-01",
				Source:      SourceSalary,
				Amount:      decimal.NewFromInt(3500),
				Description: "Monthly salary",
			},
		},
		Assets: []Asset{
			{
				ID:             "seed-asset-savings",
				Name:           "Savings account",
				Category:       AssetSavings,
				AmountInvested: decimal.NewFromInt(5000),
				CurrentValue:   decimal.NewFromInt(5000),
				Date:           "2025-11-01",
			},
			{
				ID:             "seed-asset-index",
				Name:           "Index fund",
				Category:       AssetStocks,
				AmountInvested: decimal.NewFromInt(2000),
				CurrentValue:   decimal.NewFromInt(2150),
				Date:           "2025-11-01",
			},
		},
		InvestmentBaskets: []InvestmentBasket{},
		IncomeGoals:       []IncomeGoal{},
		ExpensePlans:      []ExpensePlan{},
		Purchases:         []Purchase{},
	}
}
