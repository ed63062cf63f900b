package usecase

import (
	"context"
	"log"
	"slices"

	"github.com/JoeShih716/go-console-ledger/internal/app/core/domain"
)

// Ledger 是帳戶的核心業務邏輯層
//
// 結構:
//
//	account: 記憶體中的餘額與購買歷史 (程序存活期間以此為準)
//	store: 持久化介面，每次異動後同步寫入 (write-through)
//	journal: 選用的稽核紀錄
//	logger: 輸出讀寫失敗等警告
type Ledger struct {
	account *domain.Account
	store   Store
	journal Journal
	logger  *log.Logger
}

// Option 定義 Ledger 的配置選項函數
type Option func(*Ledger)

// WithJournal 每筆成功異動後追加一筆 domain.Transaction
func WithJournal(journal Journal) Option {
	return func(l *Ledger) {
		l.journal = journal
	}
}

// WithLogger 設定警告輸出的 logger，預設為 log.Default()
func WithLogger(logger *log.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// NewLedger 建立 Ledger，並從 store 載入餘額與歷史
//
// 參數:
//
//	ctx: 上下文
//	store: 持久化介面
//	opts: 配置選項
//
// 回傳:
//
//	*Ledger: Ledger 實例 (讀取失敗時以預設值啟動並記錄警告)
func NewLedger(ctx context.Context, store Store, opts ...Option) *Ledger {
	ledger := &Ledger{
		store:  store,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(ledger)
	}
	ledger.load(ctx)
	return ledger
}

// load 只有 NewLedger 呼叫
func (l *Ledger) load(ctx context.Context) {
	balance, err := l.store.LoadBalance(ctx)
	if err != nil {
		l.logger.Printf("WARN: %v; balance reset to 0", err)
		balance = 0
	}
	history, err := l.store.LoadHistory(ctx)
	if err != nil {
		l.logger.Printf("WARN: %v; purchase history reset to empty", err)
		history = nil
	}
	l.account = domain.NewAccount(balance, history)
}

// Balance 取得目前餘額
func (l *Ledger) Balance() float64 {
	return l.account.Balance
}

// ListHistory 回傳購買歷史的副本，依加入順序排列；空切片表示尚無購買
func (l *Ledger) ListHistory() []domain.PurchaseRecord {
	return slices.Clone(l.account.History)
}

// Deposit 處理存款
//
// 參數:
//
//	ctx: 上下文
//	amountInput: 使用者輸入的金額
//
// 回傳:
//
//	float64: 存款後餘額
//	error: domain.ErrInvalidAmount / domain.ErrNonPositiveAmount (狀態不變，不寫入 store)
func (l *Ledger) Deposit(ctx context.Context, amountInput string) (float64, error) {
	amount, err := domain.ParseAmount(amountInput)
	if err != nil {
		return 0, err
	}
	if err := l.account.Deposit(amount); err != nil {
		return 0, err
	}

	l.saveBalance(ctx)
	l.record(domain.NewTransaction(domain.TransactionTypeDeposit, amount, "", l.account.Balance))
	return l.account.Balance, nil
}

// CheckPurchase 驗證購買金額，不改變任何狀態
//
// 回傳:
//
//	float64: 解析後的金額
//	error: domain.ErrInvalidAmount / domain.ErrNonPositiveAmount / domain.ErrInsufficientFunds
func (l *Ledger) CheckPurchase(amountInput string) (float64, error) {
	amount, err := domain.ParseAmount(amountInput)
	if err != nil {
		return 0, err
	}
	if err := l.account.CanPurchase(amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// Purchase 處理購買：扣款、追加紀錄，並同步寫入餘額與歷史
//
// 參數:
//
//	ctx: 上下文
//	amountInput: 使用者輸入的金額
//	description: 購買名稱
//
// 回傳:
//
//	float64: 購買後餘額
//	domain.PurchaseRecord: 新增的紀錄
//	error: 驗證錯誤 (狀態不變，不寫入 store)
func (l *Ledger) Purchase(ctx context.Context, amountInput, description string) (float64, domain.PurchaseRecord, error) {
	amount, err := l.CheckPurchase(amountInput)
	if err != nil {
		return 0, domain.PurchaseRecord{}, err
	}
	record, err := l.account.Purchase(amount, description)
	if err != nil {
		return 0, domain.PurchaseRecord{}, err
	}

	l.saveBalance(ctx)
	l.saveHistory(ctx)
	l.record(domain.NewTransaction(domain.TransactionTypePurchase, amount, description, l.account.Balance))
	return l.account.Balance, record, nil
}

// saveBalance 寫入失敗只記錄警告，記憶體狀態不回滾
func (l *Ledger) saveBalance(ctx context.Context) {
	if err := l.store.SaveBalance(ctx, l.account.Balance); err != nil {
		l.logger.Printf("WARN: %v; balance kept in memory only", err)
	}
}

func (l *Ledger) saveHistory(ctx context.Context) {
	if err := l.store.SaveHistory(ctx, l.account.History); err != nil {
		l.logger.Printf("WARN: %v; purchase history kept in memory only", err)
	}
}

func (l *Ledger) record(tran *domain.Transaction) {
	if l.journal == nil {
		return
	}
	if err := l.journal.Append(tran); err != nil {
		l.logger.Printf("WARN: journal append %s: %v", tran.ID, err)
	}
}
