package application

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"dnf_market/internal/config"
	"dnf_market/internal/infrastructure/notifier"
	"dnf_market/internal/server"
	"dnf_market/internal/transport/bot"
	"dnf_market/internal/transport/bot/handler"
	"dnf_market/internal/worker"
	"dnf_market/pkg/application/modules"
	"dnf_market/pkg/contextx"
	"dnf_market/pkg/logx"
)

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	// Интервал для /startreport, если REPORT_INTERVAL не задан.
	defaultReportInterval       = time.Hour
)

// Run поднимает HTTP API, probe и metrics серверы, воркер отчётов
// (REPORT_INTERVAL или REPORT_SCHEDULE) и командного бота (BOT_ADMIN_ID).
// Завершается по отмене ctx.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logx.New(os.Stdout, cfg.App.LogLevel).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	deps, err := NewDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("NewDependencies: %w", err)
	}
	defer deps.Close(ctx)

	var (
		reporter   *worker.Reporter
		commandBot *bot.Bot
	)

	if cfg.Bot.ReportInterval > 0 || cfg.Bot.ReportSchedule != "" || cfg.Bot.AdminID != 0 {
		reportNotifier, err := newNotifier(cfg.Bot)
		if err != nil {
			return fmt.Errorf("newNotifier: %w", err)
		}

		reporter = worker.NewReporter(deps.Calculator, deps.Catalog, reportNotifier,
			cmp.Or(cfg.Bot.ReportInterval, defaultReportInterval)).
			WithSchedule(cfg.Bot.ReportSchedule)
	}

	if cfg.Bot.AdminID != 0 {
		commandBot, err = bot.New(cfg.Bot.Token, cfg.Bot.AdminID, handler.New(reporter, deps.Market, deps.Catalog))
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}
	}

	// Без REPORT_INTERVAL и REPORT_SCHEDULE воркер запускается только командой /startreport.
	if reporter != nil && (cfg.Bot.ReportInterval > 0 || cfg.Bot.ReportSchedule != "") {
		if err := reporter.Start(ctx); err != nil {
			return fmt.Errorf("reporter.Start: %w", err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	srv := server.NewServer(server.NewEfficiencyServer(deps.Calculator, deps.Catalog))

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr: cfg.App.HTTPAddr,
		Handler: server.NewRouter(srv, server.RouterOptions{
			Logger:         log,
			AllowedOrigins: cfg.App.AllowedOrigins,
			LogFieldMaxLen: cfg.App.LogFieldMaxLen,
		}),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.App.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeAddr,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.App.MetricsAddr}.Run(ctx, g)

	if reporter != nil {
		// Останавливает и воркер, запущенный командой /startreport.
		g.Go(func() error {
			<-ctx.Done()
			reporter.Stop()

			return nil
		})
	}

	if commandBot != nil {
		g.Go(func() error {
			if err := commandBot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("bot.Run: %w", err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}

func newNotifier(cfg config.Bot) (worker.Notifier, error) {
	if cfg.Token == "" {
		return notifier.Log{TopN: 10}, nil
	}

	bot, err := notifier.NewTelegramBot(cfg.Token, cfg.ChatID)
	if err != nil {
		return nil, fmt.Errorf("notifier.NewTelegramBot: %w", err)
	}

	return bot, nil
}
