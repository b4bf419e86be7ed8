package handler

const (
	startMessage = `<b>Gold per cash</b>

/report - посчитать рейтинг и отправить в чат
/status - состояние воркера отчётов
/startreport - запустить периодические отчёты
/stopreport - остановить периодические отчёты
/price &lt;itemId&gt; - средняя цена айтема на аукционе
/catalog - отслеживаемые товары`

	reporterRunning = "🟢 работает"
	reporterStopped = "🔴 остановлен"

	statusTemplate = "📊 <b>Отчёты:</b> %s"

	reportFailed       = "❌ Не удалось отправить отчёт"
	reportStarted      = "✅ Периодические отчёты запущены"
	reportAlreadyOn    = "⚠️ Отчёты уже запущены"
	reportStoppedText  = "⏹ Периодические отчёты остановлены"
	reportAlreadyOff   = "⚠️ Отчёты не запущены"
	priceUsage         = "Использование: /price <itemId>"
	priceFailed        = "❌ Не удалось получить цену: %s"
	priceTemplate      = "💰 <code>%s</code>: %d gold"
	priceNoSales       = "🤷 <code>%s</code>: продаж нет"
	catalogFailed      = "❌ Не удалось загрузить каталог"
	catalogEmpty       = "📭 Каталог пуст"
	catalogPageHeader  = "📚 <b>Каталог</b> (стр. %d/%d)\n\n"
	catalogItemPattern = "• <b>%s</b>: %d cash\n"
)
