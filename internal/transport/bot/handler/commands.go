package handler

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"dnf_market/internal/domain"
	"dnf_market/internal/domain/value"
	"dnf_market/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, startMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	status := reporterStopped
	if h.reporter.IsRunning() {
		status = reporterRunning
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(statusTemplate, status))
}

// OnReport считает рейтинг сразу. Отчёт уходит в чат нотификатора.
func (h *Handler) OnReport(ctx *th.Context, msg telego.Message) error {
	if err := h.reporter.RunOnce(ctx); err != nil {
		logger(ctx).Error("manual report failed", logx.Error(err))
		return h.send(ctx, msg.Chat.ID, reportFailed)
	}

	return nil
}

func (h *Handler) OnStartReport(ctx *th.Context, msg telego.Message) error {
	if h.reporter.IsRunning() {
		return h.send(ctx, msg.Chat.ID, reportAlreadyOn)
	}

	// Воркер живёт дольше апдейта, поэтому отвязываемся от его отмены.
	if err := h.reporter.Start(context.WithoutCancel(ctx)); err != nil {
		return h.send(ctx, msg.Chat.ID, reportAlreadyOn)
	}

	return h.send(ctx, msg.Chat.ID, reportStarted)
}

func (h *Handler) OnStopReport(ctx *th.Context, msg telego.Message) error {
	if !h.reporter.IsRunning() {
		return h.send(ctx, msg.Chat.ID, reportAlreadyOff)
	}

	h.reporter.Stop()

	return h.send(ctx, msg.Chat.ID, reportStoppedText)
}

func (h *Handler) OnPrice(ctx *th.Context, msg telego.Message) error {
	_, _, args := tu.ParseCommand(msg.Text)
	if len(args) != 1 {
		return h.send(ctx, msg.Chat.ID, priceUsage)
	}

	itemID, err := value.ParseItemID(args[0])
	if err != nil {
		return h.send(ctx, msg.Chat.ID, priceUsage)
	}

	price, err := h.pricer.UnitPrice(ctx, itemID)
	if err != nil {
		logger(ctx).Warn("price lookup failed", slog.String(logx.FieldItemID, itemID.String()), logx.Error(err))

		reason := err.Error()

		var marketErr *domain.MarketQueryError
		if errors.As(err, &marketErr) && marketErr.StatusCode != 0 {
			reason = fmt.Sprintf("HTTP %d", marketErr.StatusCode)
		}

		return h.send(ctx, msg.Chat.ID, fmt.Sprintf(priceFailed, reason))
	}

	escaped := html.EscapeString(itemID.String())
	if price == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(priceNoSales, escaped))
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(priceTemplate, escaped, price))
}

func (h *Handler) OnCatalog(ctx *th.Context, msg telego.Message) error {
	text, keyboard, err := h.catalogPage(ctx, 1)
	if err != nil {
		logger(ctx).Error("catalog list failed", logx.Error(err))
		return h.send(ctx, msg.Chat.ID, catalogFailed)
	}

	_, err = ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      tu.ID(msg.Chat.ID),
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: keyboard,
	})

	return err
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})
	return err
}
