package handler

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

const catalogPagePrefix = "catalog_page:"

func (h *Handler) OnCatalogCallback(ctx *th.Context, query telego.CallbackQuery) error {
	var page int
	if _, err := fmt.Sscanf(query.Data, catalogPagePrefix+"%d", &page); err != nil || page < 1 {
		page = 1
	}

	text, keyboard, err := h.catalogPage(ctx, page)
	if err != nil {
		_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText(catalogFailed).WithShowAlert())
		return fmt.Errorf("catalogPage: %w", err)
	}

	if query.Message != nil {
		// Telegram отвечает ошибкой, если текст не изменился.
		_, _ = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:      tu.ID(query.Message.GetChat().ID),
			MessageID:   query.Message.GetMessageID(),
			Text:        text,
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: keyboard,
		})
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}

func (h *Handler) catalogPage(ctx context.Context, page int) (string, *telego.InlineKeyboardMarkup, error) {
	items, err := h.catalog.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("catalog.List: %w", err)
	}

	if len(items) == 0 {
		return catalogEmpty, nil, nil
	}

	totalPages := (len(items) + catalogPageSize - 1) / catalogPageSize
	page = min(max(page, 1), totalPages)

	start := (page - 1) * catalogPageSize
	end := min(start+catalogPageSize, len(items))

	var sb strings.Builder
	fmt.Fprintf(&sb, catalogPageHeader, page, totalPages)

	for _, item := range items[start:end] {
		fmt.Fprintf(&sb, catalogItemPattern, html.EscapeString(item.DisplayName()), item.Price())
	}

	if totalPages == 1 {
		return sb.String(), nil, nil
	}

	return sb.String(), paginationKeyboard(page, totalPages), nil
}

func paginationKeyboard(page, totalPages int) *telego.InlineKeyboardMarkup {
	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(fmt.Sprintf("%s%d", catalogPagePrefix, page-1)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d / %d", page, totalPages)).
		WithCallbackData("noop"))

	if page < totalPages {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").
			WithCallbackData(fmt.Sprintf("%s%d", catalogPagePrefix, page+1)))
	}

	return tu.InlineKeyboard(tu.InlineKeyboardRow(buttons...))
}
