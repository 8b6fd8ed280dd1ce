package usecase

import (
	"github.com/shopspring/decimal"

	"finboard/internal/domain"
)

// Action is the closed set of aggregate transitions. Every mutation
// flows through Apply as exactly one of these values; the marker
// method keeps the set closed to this package's callers.
type Action interface {
	isAction()
}

// ReplaceState swaps in an externally supplied aggregate, layered over
// seed defaults by the importer before dispatch.
type ReplaceState struct {
	Data domain.FinancialData
}

// AddExpense appends a fully formed expense; the id is assigned by the
// caller and not checked for duplicates.
type AddExpense struct {
	Expense domain.Expense
}

// UpdateExpense replaces the expense with a matching id; an unknown id
// is a silent no-op.
type UpdateExpense struct {
	Expense domain.Expense
}

// DeleteExpense removes the expense with a matching id; an unknown id
// is a silent no-op.
type DeleteExpense struct {
	ID string
}

type AddRecurringExpense struct {
	Template domain.RecurringExpense
}

type UpdateRecurringExpense struct {
	Template domain.RecurringExpense
}

type DeleteRecurringExpense struct {
	ID string
}

type AddDebt struct {
	Debt domain.Debt
}

type UpdateDebt struct {
	Debt domain.Debt
}

type DeleteDebt struct {
	ID string
}

type AddIncome struct {
	Income domain.Income
}

type UpdateIncome struct {
	Income domain.Income
}

type DeleteIncome struct {
	ID string
}

type AddAsset struct {
	Asset domain.Asset
}

type UpdateAsset struct {
	Asset domain.Asset
}

type DeleteAsset struct {
	ID string
}

// AddBasket introduces a named asset grouping.
type AddBasket struct {
	Basket domain.InvestmentBasket
}

// RenameBasket changes a basket's display name without touching its
// member assets.
type RenameBasket struct {
	ID   string
	Name string
}

// DeleteBasket removes the basket and detaches its member assets.
type DeleteBasket struct {
	ID string
}

type AddPurchase struct {
	Purchase domain.Purchase
}

type UpdatePurchase struct {
	Purchase domain.Purchase
}

type DeletePurchase struct {
	ID string
}

// UpdatePurchaseStatus moves a purchase through its decision
// lifecycle. A transition into Purchased also logs the matching
// expense, dated Date, derived from the purchase record already in
// state.
type UpdatePurchaseStatus struct {
	ID     string
	Status domain.PurchaseStatus
	Date   string
}

// UpsertIncomeGoal sets the income target for a month: the existing
// goal for that month is updated in place (id preserved), otherwise a
// new record is appended.
type UpsertIncomeGoal struct {
	Month  domain.MonthKey
	Amount decimal.Decimal
}

// DeleteIncomeGoal removes the goal for a month, if any.
type DeleteIncomeGoal struct {
	Month domain.MonthKey
}

// UpsertExpensePlan sets the planned spend for a (month, mode) pair,
// updating the existing plan for that exact pair or appending a new
// one.
type UpsertExpensePlan struct {
	Month  domain.MonthKey
	Mode   domain.ExpenseMode
	Amount decimal.Decimal
}

// DeleteExpensePlan removes the plan for a (month, mode) pair, if any.
type DeleteExpensePlan struct {
	Month domain.MonthKey
	Mode  domain.ExpenseMode
}

// LogRecurringExpenses materializes every recurring template due by
// the target month into dated expenses. Safe to dispatch repeatedly.
type LogRecurringExpenses struct {
	Month domain.MonthKey
}

func (ReplaceState) isAction()           {}
func (AddExpense) isAction()             {}
func (UpdateExpense) isAction()          {}
func (DeleteExpense) isAction()          {}
func (AddRecurringExpense) isAction()    {}
func (UpdateRecurringExpense) isAction() {}
func (DeleteRecurringExpense) isAction() {}
func (AddDebt) isAction()                {}
func (UpdateDebt) isAction()             {}
func (DeleteDebt) isAction()             {}
func (AddIncome) isAction()              {}
func (UpdateIncome) isAction()           {}
func (DeleteIncome) isAction()           {}
func (AddAsset) isAction()               {}
func (UpdateAsset) isAction()            {}
func (DeleteAsset) isAction()            {}
func (AddBasket) isAction()              {}
func (RenameBasket) isAction()           {}
func (DeleteBasket) isAction()           {}
func (AddPurchase) isAction()            {}
func (UpdatePurchase) isAction()         {}
func (DeletePurchase) isAction()         {}
func (UpdatePurchaseStatus) isAction()   {}
func (UpsertIncomeGoal) isAction()       {}
func (DeleteIncomeGoal) isAction()       {}
func (UpsertExpensePlan) isAction()      {}
func (DeleteExpensePlan) isAction()      {}
func (LogRecurringExpenses) isAction()   {}
