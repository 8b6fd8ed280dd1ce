package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"finboard/internal/domain"
	"finboard/internal/gateway"
	"finboard/internal/usecase"
)

func main() {
	// Define command-line flags
	dataDir := flag.String("data", "data", "Directory holding the persisted financial data")
	monthStr := flag.String("month", "", "Target month (YYYY-MM, default: current month)")
	logRecurring := flag.Bool("log-recurring", true, "Materialize recurring expenses for the target month")
	insight := flag.Bool("insight", false, "Ask the insight service for a one-sentence commentary")
	forecast := flag.Int("forecast", 0, "Ask the insight service for an N-month forecast (0 = off)")
	exportPath := flag.String("export", "", "Export the aggregate to this file and exit")
	importPath := flag.String("import", "", "Replace the aggregate with the document at this path")
	flag.Parse()

	month := domain.MonthKey(*monthStr)
	if *monthStr == "" {
		month = domain.MonthOf(time.Now())
	}
	if !month.Valid() {
		log.Fatalf("Invalid -month value %q, expected YYYY-MM", *monthStr)
	}

	ctx := context.Background()

	// --- Dependency Injection (Wiring the application) ---
	// 1. Create the store (the outermost layer)
	store := gateway.NewFileStore(*dataDir)

	// 2. Create the tracker over the store (the core logic layer)
	tracker, err := usecase.NewTracker(ctx, store)
	if err != nil {
		log.Fatalf("Failed to initialize tracker: %v", err)
	}

	if *importPath != "" {
		doc, err := os.ReadFile(*importPath)
		if err != nil {
			log.Fatalf("Failed to read import document: %v", err)
		}
		if _, err := tracker.Import(ctx, doc); err != nil {
			log.Fatalf("Import rejected, state left untouched: %v", err)
		}
		fmt.Println("Import applied.")
	}

	if *logRecurring {
		if _, err := tracker.Dispatch(ctx, usecase.LogRecurringExpenses{Month: month}); err != nil {
			log.Fatalf("Failed to log recurring expenses: %v", err)
		}
	}

	if *exportPath != "" {
		doc, err := tracker.Export()
		if err != nil {
			log.Fatalf("Failed to export: %v", err)
		}
		if err := os.WriteFile(*exportPath, doc, 0o644); err != nil {
			log.Fatalf("Failed to write export document: %v", err)
		}
		fmt.Printf("Exported aggregate to %s\n", *exportPath)
		return
	}

	printDashboard(tracker.State(), month)

	if *insight || *forecast > 0 {
		client, err := gateway.NewInsightClient(filepath.Join(*dataDir, "settings.json"))
		if err != nil {
			log.Fatalf("Insight service unavailable: %v", err)
		}
		advisor := usecase.NewAdvisor(client)

		if *insight {
			text, err := advisor.Insight(ctx, tracker.State())
			if err != nil {
				log.Fatalf("Insight request failed: %v", err)
			}
			fmt.Printf("\nInsight: %s\n", text)
		}
		if *forecast > 0 {
			text, err := advisor.Forecast(ctx, tracker.State(), *forecast)
			if err != nil {
				log.Fatalf("Forecast request failed: %v", err)
			}
			fmt.Printf("\n%s\n", text)
		}
	}
}

func printDashboard(data domain.FinancialData, month domain.MonthKey) {
	fmt.Printf("== Finboard — %s ==\n\n", month)
	fmt.Printf("Net worth:        %s (%.1f%% of target)\n", usecase.NetWorth(data).StringFixed(2), usecase.GoalProgress(data)*100)
	fmt.Printf("Month expenses:   %s\n", usecase.MonthlyExpenseTotal(data, month).StringFixed(2))
	fmt.Printf("Month income:     %s (variance vs goal: %s)\n",
		usecase.MonthlyIncomeTotal(data, month).StringFixed(2),
		usecase.IncomeVariance(data, month).StringFixed(2))
	fmt.Printf("Budget variance:  %s (all modes, positive = under budget)\n",
		usecase.ExpenseVariance(data, month, domain.ModeBoth).StringFixed(2))

	if len(data.Debts) > 0 {
		fmt.Printf("\nDebts (%.1f%% paid off overall):\n", usecase.TotalDebtPayoffPercent(data))
		for _, debt := range data.Debts {
			fmt.Printf("  %-20s %s remaining of %s (%.1f%% paid)\n",
				debt.Name, debt.CurrentBalance.StringFixed(2), debt.OriginalAmount.StringFixed(2), usecase.DebtPayoffPercent(debt))
		}
	}

	if slices := usecase.AllocationByCategory(data); len(slices) > 0 {
		fmt.Println("\nAllocation:")
		for _, s := range slices {
			fmt.Printf("  %-20s %s\n", s.Label, s.Value.StringFixed(2))
		}
	}

	runway := usecase.Runway(data)
	fmt.Println("\nRunway inputs:")
	fmt.Printf("  Liquid assets:      %s\n", runway.LiquidAssets.StringFixed(2))
	fmt.Printf("  Avg monthly income: %s\n", runway.AvgMonthlyIncome.StringFixed(2))
	fmt.Printf("  Monthly outgoings:  %s\n", runway.MonthlyOutgoings.StringFixed(2))
	fmt.Printf("  Net cash flow:      %s\n", runway.NetCashFlow.StringFixed(2))
}
