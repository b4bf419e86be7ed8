package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dnf_market/pkg/logx"
)

// Шесть полей, первое - секунды.
var scheduleParser = cron.NewParser( //nolint:gochecknoglobals
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// RunScheduled отправляет отчёт по cron-расписанию с секундами
// ("0 0 9 * * *" означает каждый день в 9:00). Блокируется до отмены ctx.
func (w *Reporter) RunScheduled(ctx context.Context, spec string) error {
	c := cron.New(cron.WithParser(scheduleParser))

	_, err := c.AddFunc(spec, func() {
		if err := w.RunOnce(ctx); err != nil {
			logger(ctx).Error("report cycle failed", logx.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	c.Start()

	logger(ctx).Info("reporter scheduled", slog.String("schedule", spec))

	<-ctx.Done()

	<-c.Stop().Done()

	logger(ctx).Info("reporter stopped")

	return ctx.Err()
}
