// Команда efficiency один раз считает каталог и печатает рейтинг.
//
//	go run ./cmd/efficiency [-catalog items.json] [-top 20]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"dnf_market/internal/application"
	"dnf_market/internal/catalog"
	"dnf_market/internal/config"
	"dnf_market/internal/domain/entity"
	"dnf_market/pkg/contextx"
	"dnf_market/pkg/logx"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to a catalog JSON file (default: built-in catalog)")
	top := flag.Int("top", 0, "print only the N best rows")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout, *catalogPath, *top); err != nil {
		slog.Default().Error("efficiency failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context, out io.Writer, catalogPath string, top int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logx.New(os.Stderr, cfg.App.LogLevel)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	deps, err := application.NewDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("application.NewDependencies: %w", err)
	}
	defer deps.Close(ctx)

	items, err := loadItems(ctx, deps, catalogPath)
	if err != nil {
		return fmt.Errorf("loadItems: %w", err)
	}

	report := entity.NewReport(deps.Calculator.ComputeBatch(ctx, items), time.Now())

	return printReport(out, report, top)
}

func loadItems(ctx context.Context, deps *application.Dependencies, path string) ([]entity.CashItem, error) {
	if path == "" {
		items, err := deps.Catalog.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog.List: %w", err)
		}

		return items, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	items, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog.Parse: %w", err)
	}

	return items, nil
}

func printReport(out io.Writer, report entity.Report, top int) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "#\tItem\tCash\tTradeable\tBound\tTotal\tGold/cash\tBonus\t")

	for i, row := range report.Top(top) {
		bonus := "-"
		if len(row.SelectedBonusItems) > 0 {
			bonus = fmt.Sprint(row.SelectedBonusItems)
		}

		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%.4f\t%s\t\n",
			i+1, row.ItemName, row.CashPrice, row.TradeableValue, row.BoundValue, row.TotalValue, row.Efficiency, bonus)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tw.Flush: %w", err)
	}

	return nil
}
