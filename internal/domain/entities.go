package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseMode tags a cost as essential (Survival), discretionary
// investment in oneself (Growth), or counted under both views.
type ExpenseMode string

const (
	ModeSurvival ExpenseMode = "Survival"
	ModeGrowth   ExpenseMode = "Growth"
	ModeBoth     ExpenseMode = "Both"
)

// ExpenseCategory is the closed set of spending categories.
type ExpenseCategory string

const (
	CategoryHousing       ExpenseCategory = "Housing"
	CategoryFood          ExpenseCategory = "Food"
	CategoryTransport     ExpenseCategory = "Transportation"
	CategoryUtilities     ExpenseCategory = "Utilities"
	CategorySubscriptions ExpenseCategory = "Subscriptions"
	CategoryHealth        ExpenseCategory = "Health"
	CategoryEntertainment ExpenseCategory = "Entertainment"
	CategoryOther         ExpenseCategory = "Other"
)

// IncomeSource is the closed set of income origins.
type IncomeSource string

const (
	SourceSalary     IncomeSource = "Salary"
	SourceFreelance  IncomeSource = "Freelance"
	SourceBusiness   IncomeSource = "Business"
	SourceInvestment IncomeSource = "Investment"
	SourceOther      IncomeSource = "Other"
)

// AssetCategory is the closed set of asset classes. Savings and
// EmergencyFund together make up the liquid position used for runway.
type AssetCategory string

const (
	AssetSavings       AssetCategory = "Savings"
	AssetEmergencyFund AssetCategory = "EmergencyFund"
	AssetStocks        AssetCategory = "Stocks"
	AssetCrypto        AssetCategory = "Crypto"
	AssetRealEstate    AssetCategory = "RealEstate"
	AssetRetirement    AssetCategory = "Retirement"
	AssetOther         AssetCategory = "Other"
)

// PurchaseStatus tracks a planned purchase through its decision
// lifecycle.
type PurchaseStatus string

const (
	StatusConsidering PurchaseStatus = "Considering"
	StatusPurchased   PurchaseStatus = "Purchased"
	StatusDeclined    PurchaseStatus = "Declined"
)

// FrequencyMonthly is the only recurrence interval supported by
// recurring expense templates.
const FrequencyMonthly = "monthly"

// Expense is a single logged spend. Dates are plain YYYY-MM-DD
// strings; month grouping matches on the string prefix.
type Expense struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Mode        ExpenseMode     `json:"mode"`
}

// RecurringExpense is a template, not a transaction: it materializes
// into one Expense per month on demand, starting at StartMonth.
type RecurringExpense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Mode        ExpenseMode     `json:"mode"`
	Frequency   string          `json:"frequency"`
	StartMonth  MonthKey        `json:"startDate"`
}

// ExpensePlan is a budgeted amount for one (month, mode) pair.
type ExpensePlan struct {
	ID     string          `json:"id"`
	Month  MonthKey        `json:"month"`
	Mode   ExpenseMode     `json:"mode"`
	Amount decimal.Decimal `json:"amount"`
}

// Debt is an outstanding liability. CurrentBalance is expected to stay
// within [0, OriginalAmount] but the model does not enforce it.
type Debt struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	InterestRate   float64         `json:"interestRate"`
	MinimumPayment decimal.Decimal `json:"minimumPayment"`
}

// Income is a single received payment.
type Income struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Source      IncomeSource    `json:"source"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// IncomeGoal is a target amount for one month; at most one per month.
type IncomeGoal struct {
	ID     string          `json:"id"`
	Month  MonthKey        `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// Asset is a holding with its cost basis and current valuation. An
// asset may optionally belong to an InvestmentBasket via BasketID.
type Asset struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       AssetCategory   `json:"category"`
	AmountInvested decimal.Decimal `json:"amountInvested"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	Date           string          `json:"date"`
	BasketID       string          `json:"basketId,omitempty"`
}

// InvestmentBasket is a named grouping of assets, renameable
// independently of its members.
type InvestmentBasket struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Purchase is a considered spend on the decision board. Moving it to
// Purchased logs a matching Expense.
type Purchase struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Cost          decimal.Decimal `json:"cost"`
	Category      ExpenseCategory `json:"category"`
	Justification string          `json:"justification"`
	Status        PurchaseStatus  `json:"status"`
	DateAdded     string          `json:"dateAdded"`
}

// NewID returns a fresh unique entity id. Random UUIDs avoid the
// collisions a timestamp-derived id suffers under rapid dispatches.
func NewID() string {
	return uuid.NewString()
}

// LoggedExpenseID is the deterministic identity of the expense
// materialized from a recurring template for a given month. Deriving
// it from the template id and month is what makes materialization
// idempotent.
func LoggedExpenseID(templateID string, month MonthKey) string {
	return "logged-" + templateID + "-" + string(month)
}

// PurchaseExpenseID is the deterministic identity of the expense
// logged when a purchase transitions to Purchased, so re-marking an
// already purchased item cannot double-log.
func PurchaseExpenseID(purchaseID string) string {
	return "purchase-" + purchaseID
}
