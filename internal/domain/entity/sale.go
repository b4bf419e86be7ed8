package entity

// SaleRecord: завершённая сделка аукциона. Для расчёта нужен только
// UnitPrice, остальные поля проходят насквозь.
type SaleRecord struct {
	SoldDate           string  `json:"soldDate"`
	ItemID             string  `json:"itemId"`
	ItemName           string  `json:"itemName"`
	ItemAvailableLevel int     `json:"itemAvailableLevel"`
	ItemRarity         string  `json:"itemRarity"`
	ItemTypeID         string  `json:"itemTypeId"`
	ItemType           string  `json:"itemType"`
	ItemTypeDetailID   string  `json:"itemTypeDetailId"`
	ItemTypeDetail     string  `json:"itemTypeDetail"`
	Refine             int     `json:"refine"`
	Reinforce          int     `json:"reinforce"`
	AmplificationName  *string `json:"amplificationName"`
	Fame               int     `json:"fame"`
	Count              int64   `json:"count"`
	Price              int64   `json:"price"`
	UnitPrice          int64   `json:"unitPrice"`
}
