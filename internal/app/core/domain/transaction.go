package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 購買
	TransactionTypePurchase TransactionType = 2
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypePurchase:
		return "purchase"
	default:
		return fmt.Sprintf("TransactionType(%d)", uint8(t))
	}
}

// MarshalText 讓 journal 中以文字呈現交易類型
func (t TransactionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TransactionType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "deposit":
		*t = TransactionTypeDeposit
	case "purchase":
		*t = TransactionTypePurchase
	default:
		return fmt.Errorf("unknown transaction type %q", text)
	}
	return nil
}

// Transaction 一筆已完成的帳戶異動，寫入 journal 作為稽核紀錄
type Transaction struct {
	// ID: 稽核追蹤號 (UUID)
	ID   uuid.UUID       `json:"id"`
	Type TransactionType `json:"type"`
	// Amount: 異動金額
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	// Balance: 異動後餘額
	Balance float64 `json:"balance"`
	// CreatedAt: 交易時間 (unix millis)
	CreatedAt int64 `json:"created_at"`
}

// NewTransaction 建立一筆帶有新 UUID 與當前時間的交易
func NewTransaction(txType TransactionType, amount float64, description string, balance float64) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Type:        txType,
		Amount:      amount,
		Description: description,
		Balance:     balance,
		CreatedAt:   time.Now().UnixMilli(),
	}
}
