package entity

// Efficiency: сколько золота получаем за единицу кэша.
type Efficiency struct {
	ItemName           string
	CashPrice          int64
	TradeableValue     int64
	BoundValue         int64
	TotalValue         int64
	Efficiency         float64
	SelectedBonusItems []string
}

// EfficiencyPair: результат для одной покупки и, для пакетов, для десяти.
type EfficiencyPair struct {
	Single    Efficiency
	Package10 *Efficiency
}
