package notifier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"dnf_market/internal/domain/entity"
)

func testReport() entity.Report {
	return entity.NewReport(map[string]entity.EfficiencyPair{
		"Box": {Single: entity.Efficiency{
			ItemName: "Box", CashPrice: 3900, TradeableValue: 1000, TotalValue: 1000, Efficiency: 0.2564,
		}},
		"<Pack>": {
			Single: entity.Efficiency{
				ItemName: "<Pack> (1 purchase)", CashPrice: 15000, TradeableValue: 5000, BoundValue: 1000,
				TotalValue: 6000, Efficiency: 0.4,
			},
			Package10: &entity.Efficiency{
				ItemName: "<Pack> (10 purchases)", CashPrice: 150000, TradeableValue: 50300, BoundValue: 10000,
				TotalValue: 60300, Efficiency: 0.402, SelectedBonusItems: []string{"Reward box B"},
			},
		},
	}, time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC))
}

func TestFormatReport(t *testing.T) {
	rq := require.New(t)

	text := formatReport(testReport(), 2)

	rq.Contains(text, "(2026-10-18 09:30)")
	rq.Contains(text, "1. <b>&lt;Pack&gt; (10 purchases)</b>: 0.40 gold/cash")
	rq.Contains(text, "150000 cash, 60300 gold (50300 tradeable, 10000 bound)")
	rq.Contains(text, "bonus: Reward box B")
	rq.Contains(text, "2. <b>&lt;Pack&gt; (1 purchase)</b>")
	rq.NotContains(text, "Box")
}

func TestFormatReportEmpty(t *testing.T) {
	rq := require.New(t)

	text := formatReport(entity.Report{}, 10)
	rq.Contains(text, "No items could be priced.")
}

func TestTelegramBotSendReport(t *testing.T) {
	rq := require.New(t)

	token := "123456789:" + strings.Repeat("A", 35)

	var (
		gotPath string
		gotBody string
	)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":1760780000,"chat":{"id":42,"type":"private"}}}`))
	}))
	defer httpServer.Close()

	bot, err := NewTelegramBot(token, 42, telego.WithAPIServer(httpServer.URL), telego.WithDiscardLogger())
	rq.NoError(err)

	rq.NoError(bot.WithTopN(1).SendReport(context.Background(), testReport()))

	rq.Equal("/bot"+token+"/sendMessage", gotPath)
	rq.Contains(gotBody, `"chat_id":42`)
	rq.Contains(gotBody, `"parse_mode":"HTML"`)
	rq.Contains(gotBody, "10 purchases")
	rq.NotContains(gotBody, "1 purchase)")
}

func TestTelegramBotSendReportError(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer httpServer.Close()

	bot, err := NewTelegramBot("123456789:"+strings.Repeat("A", 35), 42,
		telego.WithAPIServer(httpServer.URL), telego.WithDiscardLogger())
	rq.NoError(err)

	rq.Error(bot.SendReport(context.Background(), testReport()))
}

func TestLogSendReport(t *testing.T) {
	require.NoError(t, Log{TopN: 3}.SendReport(context.Background(), testReport()))
}
