package usecase

import (
	"context"

	"github.com/JoeShih716/go-console-ledger/internal/app/core/domain"
)

//go:generate mockgen -destination=./mocks/mock_store.go -package=mocks github.com/JoeShih716/go-console-ledger/internal/app/core/usecase Store,Journal

// Store 是餘額與購買歷史的持久化介面
//
// Load 系列在資料不存在時回傳預設值與 nil；資料損毀時同樣回傳預設值，
// 並附上包裝 domain.ErrStorageRead 的錯誤，由呼叫端決定如何提示。
type Store interface {
	// LoadBalance 讀取餘額，不存在時為 0
	LoadBalance(ctx context.Context) (float64, error)
	// SaveBalance 以新值整筆覆寫餘額
	SaveBalance(ctx context.Context, balance float64) error
	// LoadHistory 讀取購買歷史，不存在時為空
	LoadHistory(ctx context.Context) ([]domain.PurchaseRecord, error)
	// SaveHistory 以完整歷史整筆覆寫
	SaveHistory(ctx context.Context, records []domain.PurchaseRecord) error
}

// Journal 記錄每一筆成功的異動
type Journal interface {
	Append(v any) error
}
