package domain

import "errors"

var (
	// ErrInvalidAmount 金額無法解析為數字
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNonPositiveAmount 金額必須為正數
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrStorageRead 讀取持久化資料失敗，呼叫端以預設值繼續
	ErrStorageRead = errors.New("storage read failed")

	// ErrStorageWrite 寫入持久化資料失敗，記憶體狀態不回滾
	ErrStorageWrite = errors.New("storage write failed")
)
