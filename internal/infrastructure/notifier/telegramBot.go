package notifier

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"dnf_market/internal/domain/entity"
)

const defaultTopN = 10

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
	topN   int
}

func NewTelegramBot(token string, chatID int64, opts ...telego.BotOption) (*TelegramBot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
		topN:   defaultTopN,
	}, nil
}

func (b *TelegramBot) WithTopN(n int) *TelegramBot {
	if n > 0 {
		b.topN = n
	}
	return b
}

// SendReport отправляет в чат topN самых выгодных айтемов.
func (b *TelegramBot) SendReport(ctx context.Context, report entity.Report) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		formatReport(report, b.topN),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func formatReport(report entity.Report, topN int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>Gold per cash</b> (%s)\n\n", report.GeneratedAt.Format("2006-01-02 15:04"))

	rows := report.Top(topN)
	if len(rows) == 0 {
		sb.WriteString("No items could be priced.")
		return sb.String()
	}

	for i, row := range rows {
		fmt.Fprintf(&sb, "%d. <b>%s</b>: %.2f gold/cash\n", i+1, html.EscapeString(row.ItemName), row.Efficiency)
		fmt.Fprintf(&sb, "    %d cash, %d gold (%d tradeable, %d bound)\n",
			row.CashPrice, row.TotalValue, row.TradeableValue, row.BoundValue)

		if len(row.SelectedBonusItems) > 0 {
			fmt.Fprintf(&sb, "    bonus: %s\n", html.EscapeString(strings.Join(row.SelectedBonusItems, ", ")))
		}
	}

	return sb.String()
}
