package usecase

import (
	"context"
	"fmt"
	"strings"

	"finboard/internal/domain"
)

// Forecast horizons outside this range are clamped before reaching the
// collaborator; the service itself never validates the horizon.
const (
	ForecastHorizonMin = 6
	ForecastHorizonMax = 60
)

// Advisor builds the plain-text financial summary and hands it to the
// external insight collaborator. It owns the horizon clamp and nothing
// else; prompt mechanics live behind the InsightService.
type Advisor struct {
	insights InsightService
}

// NewAdvisor creates a new advisor over an insight service.
func NewAdvisor(insights InsightService) *Advisor {
	return &Advisor{insights: insights}
}

// Insight asks the collaborator for one sentence of commentary on the
// current financial position.
func (a *Advisor) Insight(ctx context.Context, data domain.FinancialData) (string, error) {
	text, err := a.insights.Insight(ctx, SummaryText(data))
	if err != nil {
		return "", fmt.Errorf("get insight: %w", err)
	}
	return text, nil
}

// Forecast asks the collaborator for a multi-month narrative forecast.
// The user-supplied horizon is clamped to [6, 60] months.
func (a *Advisor) Forecast(ctx context.Context, data domain.FinancialData, horizonMonths int) (string, error) {
	if horizonMonths < ForecastHorizonMin {
		horizonMonths = ForecastHorizonMin
	}
	if horizonMonths > ForecastHorizonMax {
		horizonMonths = ForecastHorizonMax
	}
	text, err := a.insights.Forecast(ctx, data, horizonMonths)
	if err != nil {
		return "", fmt.Errorf("get forecast: %w", err)
	}
	return text, nil
}

// SummaryText renders the aggregate's headline figures as the plain
// text summary the insight collaborator consumes.
func SummaryText(d domain.FinancialData) string {
	runway := Runway(d)

	var b strings.Builder
	fmt.Fprintf(&b, "Net worth: %s (%.1f%% of target)\n", NetWorth(d).StringFixed(2), GoalProgress(d)*100)
	fmt.Fprintf(&b, "Liquid assets: %s\n", runway.LiquidAssets.StringFixed(2))
	fmt.Fprintf(&b, "Average monthly income: %s\n", runway.AvgMonthlyIncome.StringFixed(2))
	fmt.Fprintf(&b, "Recurring monthly outgoings: %s\n", runway.MonthlyOutgoings.StringFixed(2))
	fmt.Fprintf(&b, "Net monthly cash flow: %s\n", runway.NetCashFlow.StringFixed(2))
	if len(d.Debts) > 0 {
		fmt.Fprintf(&b, "Debts (%d, %.1f%% paid off overall):\n", len(d.Debts), TotalDebtPayoffPercent(d))
		for _, debt := range d.Debts {
			fmt.Fprintf(&b, "  - %s: %s of %s remaining at %.2f%%\n",
				debt.Name, debt.CurrentBalance.StringFixed(2), debt.OriginalAmount.StringFixed(2), debt.InterestRate)
		}
	}
	if slices := AllocationByCategory(d); len(slices) > 0 {
		b.WriteString("Portfolio allocation:\n")
		for _, s := range slices {
			fmt.Fprintf(&b, "  - %s: %s\n", s.Label, s.Value.StringFixed(2))
		}
	}
	return b.String()
}
