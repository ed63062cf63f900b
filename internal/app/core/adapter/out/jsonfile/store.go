package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/JoeShih716/go-console-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-console-ledger/internal/app/core/usecase"
)

// FileModeReadWrite rw-r--r-- (擁有者讀寫，其他人唯讀)
const FileModeReadWrite fs.FileMode = 0644

// balanceFile 對應 {"balance": 123.4}
// 使用指標以區分「欄位不存在」與「值為 0」
type balanceFile struct {
	Balance *float64 `json:"balance"`
}

// historyFile 對應 {"history": [{"description": "...", "amount": 1.5}]}
type historyFile struct {
	History *[]domain.PurchaseRecord `json:"history"`
}

// Store 以兩個固定路徑的 JSON 檔案保存餘額與購買歷史
//
// 結構:
//
//	balancePath: 餘額檔路徑
//	historyPath: 歷史檔路徑
type Store struct {
	balancePath string
	historyPath string
}

func NewStore(balancePath, historyPath string) *Store {
	return &Store{
		balancePath: balancePath,
		historyPath: historyPath,
	}
}

// LoadBalance 讀取餘額
//
// 回傳:
//
//	float64: 餘額；檔案不存在或損毀時為 0
//	error: 檔案損毀時包裝 domain.ErrStorageRead
func (s *Store) LoadBalance(ctx context.Context) (float64, error) {
	var f balanceFile
	found, err := readJSON(s.balancePath, &f)
	if err != nil {
		return 0, fmt.Errorf("%w: balance file %s: %v", domain.ErrStorageRead, s.balancePath, err)
	}
	if !found {
		return 0, nil
	}
	if f.Balance == nil {
		return 0, fmt.Errorf("%w: balance file %s: missing \"balance\" field", domain.ErrStorageRead, s.balancePath)
	}
	return *f.Balance, nil
}

// SaveBalance 以 {"balance": value} 覆寫餘額檔
func (s *Store) SaveBalance(ctx context.Context, balance float64) error {
	if err := writeJSON(s.balancePath, balanceFile{Balance: &balance}); err != nil {
		return fmt.Errorf("%w: balance file %s: %v", domain.ErrStorageWrite, s.balancePath, err)
	}
	return nil
}

// LoadHistory 讀取購買歷史
//
// 回傳:
//
//	[]domain.PurchaseRecord: 歷史；檔案不存在或損毀時為空切片
//	error: 檔案損毀時包裝 domain.ErrStorageRead
func (s *Store) LoadHistory(ctx context.Context) ([]domain.PurchaseRecord, error) {
	var f historyFile
	found, err := readJSON(s.historyPath, &f)
	if err != nil {
		return []domain.PurchaseRecord{}, fmt.Errorf("%w: history file %s: %v", domain.ErrStorageRead, s.historyPath, err)
	}
	if !found {
		return []domain.PurchaseRecord{}, nil
	}
	if f.History == nil {
		return []domain.PurchaseRecord{}, fmt.Errorf("%w: history file %s: missing \"history\" field", domain.ErrStorageRead, s.historyPath)
	}
	return *f.History, nil
}

// SaveHistory 以 {"history": records} 覆寫歷史檔
func (s *Store) SaveHistory(ctx context.Context, records []domain.PurchaseRecord) error {
	if records == nil {
		records = []domain.PurchaseRecord{}
	}
	if err := writeJSON(s.historyPath, historyFile{History: &records}); err != nil {
		return fmt.Errorf("%w: history file %s: %v", domain.ErrStorageWrite, s.historyPath, err)
	}
	return nil
}

// readJSON 讀取並解析 JSON 檔；檔案不存在時 found 為 false 且不回傳錯誤
func readJSON(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// writeJSON 先寫入 path+".tmp"，完成後再以 rename 取代原檔，
// 寫到一半失敗時原檔維持不變
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FileModeReadWrite)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	// 刷入硬碟
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

var _ usecase.Store = (*Store)(nil)
