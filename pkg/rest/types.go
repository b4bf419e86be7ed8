// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// CashItemType Тип кэш-айтема
type CashItemType string

const (
	CashItemTypeSingle  CashItemType = "single"
	CashItemTypePackage CashItemType = "package"
)

// CashItem Описание кэш-айтема (одиночный или пакет)
type CashItem struct {
	Type         CashItemType  `json:"type" validate:"required,oneof=single package"`
	Name         string        `json:"name" validate:"required"`
	ItemID       string        `json:"itemId,omitempty" validate:"required_if=Type single"`
	CashPrice    int64         `json:"cashPrice" validate:"required,gt=0,lte=1000000000000"`
	Items        []ItemEntry   `json:"items,omitempty" validate:"required_if=Type package,dive"`
	BonusItems   []ItemEntry   `json:"bonusItems,omitempty" validate:"dive"`
	BonusChoices [][]ItemEntry `json:"bonusChoices,omitempty" validate:"dive,min=1,dive"`
}

// ItemEntry Компонент пакета или бонус за 10 покупок
type ItemEntry struct {
	ItemID  string `json:"itemId" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Count   int64  `json:"count" validate:"required,gte=1,lte=1000000"`
	IsBound bool   `json:"isBound"`
}

// Efficiency Результат расчёта эффективности
type Efficiency struct {
	ItemName           string   `json:"itemName"`
	CashPrice          int64    `json:"cashPrice"`
	TradeableValue     int64    `json:"tradeableValue"`
	BoundValue         int64    `json:"boundValue"`
	TotalValue         int64    `json:"totalValue"`
	Efficiency         float64  `json:"efficiency"`
	SelectedBonusItems []string `json:"selectedBonusItems,omitempty"`
}

// EfficiencyPair Результат для одной покупки и (для пакетов) десяти покупок
type EfficiencyPair struct {
	Single    Efficiency  `json:"single"`
	Package10 *Efficiency `json:"package10,omitempty"`
}

// CatalogEfficiency Эффективность всех айтемов каталога
type CatalogEfficiency struct {
	Items     map[string]EfficiencyPair `json:"items"`
	Timestamp string                    `json:"timestamp"`
}

// Health Состояние сервиса
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
