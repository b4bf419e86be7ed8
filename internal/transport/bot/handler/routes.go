package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"dnf_market/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStatus, th.CommandEqual("status"))
	adminGroup.HandleMessage(h.OnReport, th.CommandEqual("report"))
	adminGroup.HandleMessage(h.OnStartReport, th.CommandEqual("startreport"))
	adminGroup.HandleMessage(h.OnStopReport, th.CommandEqual("stopreport"))
	adminGroup.HandleMessage(h.OnPrice, th.CommandEqual("price"))
	adminGroup.HandleMessage(h.OnCatalog, th.CommandEqual("catalog"))

	// Пагинация каталога
	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(adminID))

	cbGroup.HandleCallbackQuery(h.OnCatalogCallback, th.CallbackDataPrefix(catalogPagePrefix))
}
