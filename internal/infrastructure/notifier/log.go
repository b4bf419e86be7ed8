package notifier

import (
	"context"
	"log/slog"

	"dnf_market/internal/domain/entity"
	"dnf_market/pkg/logx"
)

// Log пишет отчёт в лог. Используется, когда бот не настроен.
type Log struct {
	TopN int
}

func (l Log) SendReport(ctx context.Context, report entity.Report) error {
	rows := report.Top(l.TopN)

	logger(ctx).Info("efficiency report", slog.Int(logx.FieldCount, len(report.Rows)))

	for i, row := range rows {
		logger(ctx).Info("efficiency report row",
			slog.Int("rank", i+1),
			slog.String(logx.FieldItemName, row.ItemName),
			slog.Int64(logx.FieldCashPrice, row.CashPrice),
			slog.Float64(logx.FieldEfficiency, row.Efficiency),
		)
	}

	return nil
}
