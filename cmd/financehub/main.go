package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"financehub/internal/adapter/kvstore/memory"
	"financehub/internal/adapter/kvstore/sqlite"
	"financehub/internal/adapter/repository/kvjson"
	"financehub/internal/config"
	"financehub/internal/domain"
	"financehub/internal/logger"
	"financehub/internal/state"
	"financehub/internal/usecase/budget"
	"financehub/internal/usecase/dashboard"
	"financehub/internal/usecase/goal"
	"financehub/internal/usecase/seeder"
	"financehub/internal/usecase/transaction"
)

// app bundles the wired services handed to each command.
type app struct {
	store        *state.Store
	transactions *transaction.Service
	budgets      *budget.Service
	goals        *goal.Service
	dashboard    *dashboard.Service
	log          zerolog.Logger
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	var kv domain.KVStore
	switch cfg.DataBackend {
	case "sqlite":
		store, err := sqlite.Open(cfg.SQLiteDBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SQLiteDBPath).Msg("Failed to open database")
		}
		kv = store
	case "memory":
		kv = memory.New()
	}
	defer kv.Close()

	gateway := kvjson.NewGateway(kv, cfg.KeyPrefix, log)
	store, err := state.Open(ctx, gateway, seeder.DefaultAccounts())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to restore state")
	}

	a := &app{
		store:        store,
		transactions: transaction.NewService(store, log),
		budgets:      budget.NewService(store, log),
		goals:        goal.NewService(store, log),
		dashboard:    dashboard.NewService(store, nil),
		log:          log,
	}

	switch os.Args[1] {
	case "add":
		runAdd(ctx, a)
	case "budget-add":
		runBudgetAdd(ctx, a)
	case "budget-limit":
		runBudgetLimit(ctx, a)
	case "budget-del":
		runBudgetDelete(ctx, a)
	case "goal-add":
		runGoalAdd(ctx, a)
	case "goal-del":
		runGoalDelete(ctx, a)
	case "list":
		runList(a)
	case "dashboard":
		runDashboard(a)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("FinanceHub CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  financehub <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  add           Record an income or expense transaction")
	fmt.Println("  budget-add    Create a category budget")
	fmt.Println("  budget-limit  Change the limit of an existing budget")
	fmt.Println("  budget-del    Delete a budget")
	fmt.Println("  goal-add      Create a financial goal")
	fmt.Println("  goal-del      Delete a goal")
	fmt.Println("  list          List all transactions, newest first")
	fmt.Println("  dashboard     Show the derived overview")
	fmt.Println("  help          Show this help message")
	fmt.Println("\nRun 'financehub <command> -h' for more information on a command.")
}

func runAdd(ctx context.Context, a *app) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	txType := fs.String("type", "expense", "Transaction type: income or expense")
	amount := fs.String("amount", "", "Amount, e.g. 42.50")
	category := fs.String("category", "", "Category, e.g. 'Food & Dining'")
	description := fs.String("description", "", "What the money was for")
	date := fs.String("date", "", "Date in YYYY-MM-DD format")
	tags := fs.String("tags", "", "Comma-separated tags")
	recurring := fs.Bool("recurring", false, "Mark as recurring")
	frequency := fs.String("frequency", "", "Recurring frequency: weekly, monthly or yearly")
	fs.Parse(os.Args[2:])

	input := transaction.AddInput{
		Type:               *txType,
		Amount:             *amount,
		Category:           *category,
		Description:        *description,
		Date:               *date,
		Recurring:          *recurring,
		RecurringFrequency: *frequency,
	}
	if *tags != "" {
		input.Tags = strings.Split(*tags, ",")
	}

	tx, err := a.transactions.Add(ctx, input)
	if err != nil {
		a.log.Fatal().Err(err).Msg("Failed to record transaction")
	}

	fmt.Printf("Recorded %s %s (%s) as %s\n", tx.Type, tx.Amount, tx.Category, tx.ID)
}

func runBudgetAdd(ctx context.Context, a *app) {
	fs := flag.NewFlagSet("budget-add", flag.ExitOnError)
	category := fs.String("category", "", "Category the budget tracks")
	limit := fs.String("limit", "", "Spending limit for the period")
	period := fs.String("period", "", "Budget period: weekly, monthly or yearly (default monthly)")
	threshold := fs.String("threshold", "", "Alert threshold percent (default 80)")
	fs.Parse(os.Args[2:])

	b, err := a.budgets.Add(ctx, budget.AddInput{
		Category:       *category,
		Limit:          *limit,
		Period:         domain.BudgetPeriod(*period),
		AlertThreshold: *threshold,
	})
	if err != nil {
		a.log.Fatal().Err(err).Msg("Failed to create budget")
	}

	fmt.Printf("Created budget %s: %s per %s, already spent %s\n", b.ID, b.Limit, b.Period, b.Spent)
}

func runBudgetLimit(ctx context.Context, a *app) {
	fs := flag.NewFlagSet("budget-limit", flag.ExitOnError)
	id := fs.String("id", "", "Budget id")
	limit := fs.String("limit", "", "New spending limit")
	fs.Parse(os.Args[2:])

	budgetID := parseID(a, *id)
	b, err := a.budgets.UpdateLimit(ctx, budgetID, *limit)
	if err != nil {
		a.log.Fatal().Err(err).Msg("Failed to update budget limit")
	}
	if b == nil {
		fmt.Printf("No budget with id %s\n", budgetID)
		return
	}

	fmt.Printf("Budget %s limit is now %s\n", b.ID, b.Limit)
}

func runBudgetDelete(ctx context.Context, a *app) {
	fs := flag.NewFlagSet("budget-del", flag.ExitOnError)
	id := fs.String("id", "", "Budget id")
	fs.Parse(os.Args[2:])

	budgetID := parseID(a, *id)
	if err := a.budgets.Delete(ctx, budgetID); err != nil {
		a.log.Fatal().Err(err).Msg("Failed to delete budget")
	}

	fmt.Printf("Deleted budget %s\n", budgetID)
}

func runGoalAdd(ctx context.Context, a *app) {
	fs := flag.NewFlagSet("goal-add", flag.ExitOnError)
	title := fs.String("title", "", "Goal title")
	target := fs.String("target", "", "Target amount")
	date := fs.String("date", "", "Target date in YYYY-MM-DD format")
	category := fs.String("category", "", "Goal category: savings, debt, investment or purchase (default savings)")
	priority := fs.String("priority", "", "Priority: low, medium or high (default medium)")
	description := fs.String("description", "", "Optional description")
	fs.Parse(os.Args[2:])

	g, err := a.goals.Add(ctx, goal.AddInput{
		Title:        *title,
		TargetAmount: *target,
		TargetDate:   *date,
		Category:     domain.GoalCategory(*category),
		Priority:     domain.GoalPriority(*priority),
		Description:  *description,
	})
	if err != nil {
		a.log.Fatal().Err(err).Msg("Failed to create goal")
	}

	fmt.Printf("Created goal %s: %s, target %s by %s\n", g.ID, g.Title, g.TargetAmount, g.TargetDate)
}

func runGoalDelete(ctx context.Context, a *app) {
	fs := flag.NewFlagSet("goal-del", flag.ExitOnError)
	id := fs.String("id", "", "Goal id")
	fs.Parse(os.Args[2:])

	goalID := parseID(a, *id)
	if err := a.goals.Delete(ctx, goalID); err != nil {
		a.log.Fatal().Err(err).Msg("Failed to delete goal")
	}

	fmt.Printf("Deleted goal %s\n", goalID)
}

func runList(a *app) {
	transactions := a.store.Transactions()
	if len(transactions) == 0 {
		fmt.Println("No transactions recorded yet.")
		return
	}

	fmt.Printf("=== Transactions (%d) ===\n", len(transactions))
	for i, tx := range transactions {
		sign := "-"
		if tx.Type == domain.TransactionTypeIncome {
			sign = "+"
		}
		fmt.Printf("\n%d. %s\n", i+1, tx.Description)
		fmt.Printf("   Date:     %s\n", tx.Date)
		fmt.Printf("   Amount:   %s%s\n", sign, tx.Amount)
		fmt.Printf("   Category: %s\n", tx.Category)
		if len(tx.Tags) > 0 {
			fmt.Printf("   Tags:     %s\n", strings.Join(tx.Tags, ", "))
		}
		fmt.Printf("   ID:       %s\n", tx.ID)
	}
	fmt.Println()
}

func runDashboard(a *app) {
	overview := a.dashboard.Overview()

	fmt.Println("\n=== This Month ===")
	fmt.Printf("Income:    %s\n", overview.Month.Income)
	fmt.Printf("Expenses:  %s\n", overview.Month.Expenses)
	fmt.Printf("Savings:   %s\n", overview.Savings)
	fmt.Printf("Net worth: %s\n", overview.NetWorth)

	if len(overview.Budgets) > 0 {
		fmt.Printf("\n=== Budgets (%d) ===\n", len(overview.Budgets))
		for _, report := range overview.Budgets {
			fmt.Printf("%-20s %s/%s (%s%%) [%s]\n",
				report.Budget.Category, report.Spent, report.Budget.Limit,
				report.DisplayPercent.StringFixed(0), report.Status)
		}
	}

	if len(overview.Goals) > 0 {
		fmt.Printf("\n=== Goals (%d) ===\n", len(overview.Goals))
		for _, report := range overview.Goals {
			remaining := fmt.Sprintf("%d days left", report.Progress.DaysLeft)
			if report.Progress.Overdue {
				remaining = "overdue"
			}
			fmt.Printf("%-20s %s/%s (%s%%, %s)\n",
				report.Goal.Title, report.Goal.CurrentAmount, report.Goal.TargetAmount,
				report.Progress.Percent.StringFixed(0), remaining)
		}
	}

	if len(overview.Spending) > 0 {
		fmt.Println("\n=== Spending by Category ===")
		for _, share := range overview.Spending {
			fmt.Printf("%-20s %s (%s%%)\n", share.Category, share.Amount, share.Percent.StringFixed(1))
		}
	}

	if len(overview.Recent) > 0 {
		fmt.Println("\n=== Recent Activity ===")
		for _, tx := range overview.Recent {
			sign := "-"
			if tx.Type == domain.TransactionTypeIncome {
				sign = "+"
			}
			fmt.Printf("%s  %s%-10s %s\n", tx.Date, sign, tx.Amount, tx.Description)
		}
	}
	fmt.Println()
}

func parseID(a *app, raw string) uuid.UUID {
	if raw == "" {
		a.log.Fatal().Msg("Error: --id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		a.log.Fatal().Err(err).Str("id", raw).Msg("Invalid id")
	}
	return id
}
