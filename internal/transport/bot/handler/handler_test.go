package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/stretchr/testify/require"

	"dnf_market/internal/domain"
	"dnf_market/internal/domain/entity"
	"dnf_market/internal/domain/value"
	"dnf_market/internal/transport/bot/handler"
	"dnf_market/internal/worker"
)

const (
	adminID = int64(1001)
	chatID  = int64(42)
)

type apiCall struct {
	Method string
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type pricerFunc func(ctx context.Context, itemID value.ItemID) (int64, error)

func (f pricerFunc) UnitPrice(ctx context.Context, itemID value.ItemID) (int64, error) {
	return f(ctx, itemID)
}

type staticCatalog []entity.CashItem

func (c staticCatalog) List(context.Context) ([]entity.CashItem, error) { return c, nil }

// startBot поднимает обработчик поверх фейкового Bot API и возвращает канал
// входящих апдейтов и канал вызовов API.
func startBot(t *testing.T, h *handler.Handler) (chan<- telego.Update, <-chan apiCall) {
	t.Helper()

	calls := make(chan apiCall, 16)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := apiCall{Method: r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]}
		_ = jsoniter.NewDecoder(r.Body).Decode(&call)

		calls <- call

		w.Header().Set("Content-Type", "application/json")
		if call.Method == "answerCallbackQuery" {
			_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
			return
		}

		_, _ = fmt.Fprintf(w, `{"ok":true,"result":{"message_id":7,"date":1760780000,"chat":{"id":%d,"type":"private"}}}`, chatID)
	}))
	t.Cleanup(httpServer.Close)

	token := "123456789:" + strings.Repeat("A", 35)

	bot, err := telego.NewBot(token, telego.WithAPIServer(httpServer.URL), telego.WithDiscardLogger())
	require.NoError(t, err)

	updates := make(chan telego.Update)

	bh, err := th.NewBotHandler(bot, updates)
	require.NoError(t, err)

	h.RegisterRoutes(bh, adminID)

	go func() { _ = bh.Start() }()

	t.Cleanup(func() {
		_ = bh.Stop()
	})

	return updates, calls
}

func command(from int64, text string) telego.Update {
	return telego.Update{Message: &telego.Message{
		MessageID: 1,
		From:      &telego.User{ID: from},
		Chat:      telego.Chat{ID: chatID, Type: telego.ChatTypePrivate},
		Text:      text,
	}}
}

func waitCall(t *testing.T, calls <-chan apiCall) apiCall {
	t.Helper()

	select {
	case call := <-calls:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("no Bot API call")
		return apiCall{}
	}
}

func stoppedReporter() *handler.ReporterMock {
	return &handler.ReporterMock{
		IsRunningFunc: func() bool { return false },
		RunOnceFunc:   func(context.Context) error { return nil },
		StartFunc:     func(context.Context) error { return nil },
		StopFunc:      func() {},
	}
}

func TestOnStatus(t *testing.T) {
	rq := require.New(t)

	updates, calls := startBot(t, handler.New(stoppedReporter(), nil, nil))

	updates <- command(adminID, "/status")

	call := waitCall(t, calls)
	rq.Equal("sendMessage", call.Method)
	rq.Equal(chatID, call.ChatID)
	rq.Contains(call.Text, "остановлен")
}

func TestNonAdminIsIgnored(t *testing.T) {
	rq := require.New(t)

	reporter := stoppedReporter()
	updates, calls := startBot(t, handler.New(reporter, nil, nil))

	updates <- command(adminID+1, "/report")
	updates <- command(adminID, "/start")

	call := waitCall(t, calls)
	rq.Contains(call.Text, "/report")
	rq.Empty(reporter.RunOnceCalls())
}

func TestOnReport(t *testing.T) {
	rq := require.New(t)

	reporter := stoppedReporter()
	reporter.RunOnceFunc = func(context.Context) error { return errors.New("catalog unavailable") }

	updates, calls := startBot(t, handler.New(reporter, nil, nil))

	updates <- command(adminID, "/report")

	call := waitCall(t, calls)
	rq.Contains(call.Text, "Не удалось отправить отчёт")
	rq.Len(reporter.RunOnceCalls(), 1)
}

func TestOnStartStopReport(t *testing.T) {
	rq := require.New(t)

	running := false
	reporter := stoppedReporter()
	reporter.IsRunningFunc = func() bool { return running }
	reporter.StartFunc = func(context.Context) error {
		running = true
		return nil
	}
	reporter.StopFunc = func() { running = false }

	updates, calls := startBot(t, handler.New(reporter, nil, nil))

	updates <- command(adminID, "/startreport")
	rq.Contains(waitCall(t, calls).Text, "запущены")
	rq.Len(reporter.StartCalls(), 1)
	rq.NoError(reporter.StartCalls()[0].Ctx.Err())

	updates <- command(adminID, "/startreport")
	rq.Contains(waitCall(t, calls).Text, "уже запущены")
	rq.Len(reporter.StartCalls(), 1)

	updates <- command(adminID, "/stopreport")
	rq.Contains(waitCall(t, calls).Text, "остановлены")
	rq.Len(reporter.StopCalls(), 1)

	updates <- command(adminID, "/stopreport")
	rq.Contains(waitCall(t, calls).Text, "не запущены")
}

type emptyCalculator struct{}

func (emptyCalculator) ComputeBatch(context.Context, []entity.CashItem) map[string]entity.EfficiencyPair {
	return nil
}

func TestScheduledReporterControl(t *testing.T) {
	rq := require.New(t)

	notifier := &worker.NotifierMock{
		SendReportFunc: func(context.Context, entity.Report) error { return nil },
	}

	// Раз в год, чтобы отчёт не ушёл посреди теста.
	reporter := worker.NewReporter(emptyCalculator{}, staticCatalog{}, notifier, time.Hour).
		WithSchedule("0 0 0 1 1 *")

	rq.NoError(reporter.Start(context.Background()))
	t.Cleanup(reporter.Stop)

	updates, calls := startBot(t, handler.New(reporter, nil, staticCatalog{}))

	updates <- command(adminID, "/status")
	rq.Contains(waitCall(t, calls).Text, "работает")

	updates <- command(adminID, "/startreport")
	rq.Contains(waitCall(t, calls).Text, "уже запущены")

	updates <- command(adminID, "/stopreport")
	rq.Contains(waitCall(t, calls).Text, "остановлены")
	rq.False(reporter.IsRunning())

	updates <- command(adminID, "/status")
	rq.Contains(waitCall(t, calls).Text, "остановлен")

	updates <- command(adminID, "/startreport")
	rq.Contains(waitCall(t, calls).Text, "запущены")
	rq.True(reporter.IsRunning())
	rq.Empty(notifier.SendReportCalls())
}

func TestOnPrice(t *testing.T) {
	pricer := pricerFunc(func(_ context.Context, itemID value.ItemID) (int64, error) {
		switch itemID {
		case "box":
			return 1040, nil
		case "unlisted":
			return 0, nil
		default:
			return 0, domain.NewMarketQueryError(itemID, http.StatusServiceUnavailable, nil)
		}
	})

	testCases := []struct {
		name string
		text string
		want string
	}{
		{name: "Price", text: "/price box", want: "<code>box</code>: 1040 gold"},
		{name: "No sales", text: "/price unlisted", want: "продаж нет"},
		{name: "Market failure", text: "/price broken", want: "HTTP 503"},
		{name: "Missing argument", text: "/price", want: "/price <itemId>"},
		{name: "Too many arguments", text: "/price a b", want: "/price <itemId>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			updates, calls := startBot(t, handler.New(stoppedReporter(), pricer, nil))

			updates <- command(adminID, tc.text)

			rq.Contains(waitCall(t, calls).Text, tc.want)
		})
	}
}

func TestOnCatalog(t *testing.T) {
	rq := require.New(t)

	var items staticCatalog
	for i := range 12 {
		items = append(items, entity.SingleItem{
			Name:      fmt.Sprintf("Item %02d", i+1),
			ItemID:    value.ItemID(fmt.Sprintf("id%d", i+1)),
			CashPrice: int64(1000 * (i + 1)),
		})
	}

	updates, calls := startBot(t, handler.New(stoppedReporter(), nil, items))

	updates <- command(adminID, "/catalog")

	call := waitCall(t, calls)
	rq.Contains(call.Text, "стр. 1/2")
	rq.Contains(call.Text, "<b>Item 01</b>: 1000 cash")
	rq.NotContains(call.Text, "Item 11")

	updates <- telego.Update{CallbackQuery: &telego.CallbackQuery{
		ID:   "cb",
		From: telego.User{ID: adminID},
		Data: "catalog_page:2",
		Message: &telego.Message{
			MessageID: 7,
			Chat:      telego.Chat{ID: chatID, Type: telego.ChatTypePrivate},
		},
	}}

	edit := waitCall(t, calls)
	rq.Equal("editMessageText", edit.Method)
	rq.Contains(edit.Text, "стр. 2/2")
	rq.Contains(edit.Text, "Item 12")

	rq.Equal("answerCallbackQuery", waitCall(t, calls).Method)
}

func TestOnCatalogEmpty(t *testing.T) {
	rq := require.New(t)

	updates, calls := startBot(t, handler.New(stoppedReporter(), nil, staticCatalog{}))

	updates <- command(adminID, "/catalog")

	rq.Contains(waitCall(t, calls).Text, "Каталог пуст")
}
