package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-console-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-console-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-console-ledger/pkg/mysql"
)

// balanceRowID 餘額表只有一列
const balanceRowID = 1

// sqlBalance 對應資料庫的 balances 表
type sqlBalance struct {
	ID        int64 `gorm:"primaryKey;autoIncrement:false"`
	Balance   float64
	UpdatedAt int64 `gorm:"autoUpdateTime:milli"` // 自動更新時間
}

func (*sqlBalance) TableName() string {
	return "balances"
}

// sqlPurchase 對應資料庫的 purchases 表
type sqlPurchase struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	Seq         int   `gorm:"index"` // 在歷史中的位置，決定顯示順序
	Description string
	Amount      float64
	CreatedAt   int64 `gorm:"autoCreateTime:milli"` // 自動寫入時間
}

func (*sqlPurchase) TableName() string {
	return "purchases"
}

// Store 以 MySQL 保存餘額與購買歷史
type Store struct {
	client *mysql.Client
}

func NewStore(client *mysql.Client) *Store {
	return &Store{
		client: client,
	}
}

// Migrate 建立或更新資料表
func (s *Store) Migrate(ctx context.Context) error {
	return s.client.DB().WithContext(ctx).AutoMigrate(&sqlBalance{}, &sqlPurchase{})
}

// LoadBalance 讀取餘額，尚無資料時為 0
func (s *Store) LoadBalance(ctx context.Context) (float64, error) {
	var row sqlBalance
	err := s.client.DB().WithContext(ctx).Where("id = ?", balanceRowID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: balance row: %v", domain.ErrStorageRead, err)
	}
	return row.Balance, nil
}

// SaveBalance 以 upsert 覆寫餘額
func (s *Store) SaveBalance(ctx context.Context, balance float64) error {
	row := sqlBalance{ID: balanceRowID, Balance: balance}
	err := s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("%w: balance row: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

// LoadHistory 依 seq 順序讀取購買歷史
func (s *Store) LoadHistory(ctx context.Context) ([]domain.PurchaseRecord, error) {
	var rows []sqlPurchase
	if err := s.client.DB().WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return []domain.PurchaseRecord{}, fmt.Errorf("%w: history rows: %v", domain.ErrStorageRead, err)
	}
	records := make([]domain.PurchaseRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.PurchaseRecord{Description: row.Description, Amount: row.Amount})
	}
	return records, nil
}

// SaveHistory 在同一個交易內清空並重新寫入完整歷史
func (s *Store) SaveHistory(ctx context.Context, records []domain.PurchaseRecord) error {
	err := s.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&sqlPurchase{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		rows := make([]sqlPurchase, len(records))
		for i, r := range records {
			rows[i] = sqlPurchase{Seq: i, Description: r.Description, Amount: r.Amount}
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("%w: history rows: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

var _ usecase.Store = (*Store)(nil)
