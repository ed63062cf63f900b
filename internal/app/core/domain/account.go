package domain

// Account 記憶體中的帳戶狀態：餘額與購買歷史
type Account struct {
	Balance float64
	History []PurchaseRecord
}

func NewAccount(balance float64, history []PurchaseRecord) *Account {
	if history == nil {
		history = []PurchaseRecord{}
	}
	return &Account{
		Balance: balance,
		History: history,
	}
}

// Deposit 存款
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}

	a.Balance = a.Balance + amount
	return nil
}

// CanPurchase 檢查是否可以購買，不改變狀態
func (a *Account) CanPurchase(amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > a.Balance {
		return ErrInsufficientFunds
	}
	return nil
}

// Purchase 扣款並追加一筆購買紀錄
func (a *Account) Purchase(amount float64, description string) (PurchaseRecord, error) {
	if err := a.CanPurchase(amount); err != nil {
		return PurchaseRecord{}, err
	}

	a.Balance = a.Balance - amount
	record := PurchaseRecord{Description: description, Amount: amount}
	a.History = append(a.History, record)
	return record, nil
}
