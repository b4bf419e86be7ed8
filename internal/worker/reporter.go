package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dnf_market/internal/domain/entity"
	"dnf_market/pkg/logx"
)

type Calculator interface {
	ComputeBatch(ctx context.Context, items []entity.CashItem) map[string]entity.EfficiencyPair
}

type Catalog interface {
	List(ctx context.Context) ([]entity.CashItem, error)
}

//go:generate moq -rm -out notifier_mock.gen.go . Notifier
type Notifier interface {
	SendReport(ctx context.Context, report entity.Report) error
}

// Reporter периодически пересчитывает каталог и отправляет рейтинг.
type Reporter struct {
	calculator Calculator
	catalog    Catalog
	notifier   Notifier
	interval   time.Duration
	schedule   string
	now        func() time.Time

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewReporter(
	calculator Calculator,
	catalog Catalog,
	notifier Notifier,
	interval time.Duration,
) *Reporter {
	return &Reporter{
		calculator: calculator,
		catalog:    catalog,
		notifier:   notifier,
		interval:   interval,
		now:        time.Now,
	}
}

// WithSchedule переключает Start на cron-расписание вместо интервала.
func (w *Reporter) WithSchedule(spec string) *Reporter {
	w.schedule = spec
	return w
}

// Start запускает воркер в фоне: по расписанию, если оно задано, иначе
// раз в interval.
func (w *Reporter) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("reporter is already running")
	}

	run := w.Run
	if w.schedule != "" {
		if _, err := scheduleParser.Parse(w.schedule); err != nil {
			return fmt.Errorf("invalid report schedule %q: %w", w.schedule, err)
		}

		run = func(ctx context.Context) error { return w.RunScheduled(ctx, w.schedule) }
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("reporter stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *Reporter) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Reporter) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run отправляет первый отчёт сразу, затем раз в interval. Ошибка одного
// цикла логируется и не останавливает воркер.
func (w *Reporter) Run(ctx context.Context) error {
	if w.interval <= 0 {
		return fmt.Errorf("invalid report interval %s", w.interval)
	}

	logger(ctx).Info("reporter started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if err := w.RunOnce(ctx); err != nil {
			logger(ctx).Error("report cycle failed", logx.Error(err))
		}

		select {
		case <-ctx.Done():
			logger(ctx).Info("reporter stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *Reporter) RunOnce(ctx context.Context) error {
	items, err := w.catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("catalog.List: %w", err)
	}

	report := entity.NewReport(w.calculator.ComputeBatch(ctx, items), w.now())

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("report canceled: %w", err)
	}

	if err := w.notifier.SendReport(ctx, report); err != nil {
		return fmt.Errorf("notifier.SendReport: %w", err)
	}

	logger(ctx).Info("report sent",
		slog.Int(logx.FieldCount, len(report.Rows)),
		slog.Int("catalog-size", len(items)),
	)

	return nil
}
