package domain

// PurchaseRecord 一筆購買紀錄，建立後不再修改
type PurchaseRecord struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
