package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JoeShih716/go-console-ledger/internal/app/core/domain"
)

// Ledger 是 console 需要的帳戶操作
type Ledger interface {
	Deposit(ctx context.Context, amountInput string) (float64, error)
	CheckPurchase(amountInput string) (float64, error)
	Purchase(ctx context.Context, amountInput, description string) (float64, domain.PurchaseRecord, error)
	ListHistory() []domain.PurchaseRecord
}

// Console 以文字選單驅動 Ledger
type Console struct {
	ledger  Ledger
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(ledger Ledger, in io.Reader, out io.Writer) *Console {
	return &Console{
		ledger:  ledger,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run 反覆顯示選單直到選擇離開或輸入結束 (EOF)
// 任何業務錯誤都只顯示訊息，不會中斷迴圈
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printMenu()
		choice, ok := c.prompt("Choose a menu option: ")
		if !ok {
			return c.scanner.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			ok = c.deposit(ctx)
		case "2":
			ok = c.purchase(ctx)
		case "3":
			c.showHistory()
		case "4":
			c.println("Leaving the bank account.")
			return nil
		default:
			c.println("Invalid menu option. Try again.")
		}
		if !ok {
			return c.scanner.Err()
		}
	}
}

func (c *Console) printMenu() {
	c.println("")
	c.println("=== Bank account ===")
	c.println("1. Deposit")
	c.println("2. Purchase")
	c.println("3. Purchase history")
	c.println("4. Exit")
}

// deposit 回傳 false 代表輸入已結束
func (c *Console) deposit(ctx context.Context) bool {
	input, ok := c.prompt("Enter the amount to deposit: ")
	if !ok {
		return false
	}
	balance, err := c.ledger.Deposit(ctx, input)
	if err != nil {
		c.println(errorMessage(err))
		return true
	}
	amount, _ := domain.ParseAmount(input)
	c.printf("Deposited %.2f. Current balance: %.2f\n", amount, balance)
	return true
}

// purchase 先驗證金額再詢問名稱，金額不合法時不會要求輸入名稱
func (c *Console) purchase(ctx context.Context) bool {
	input, ok := c.prompt("Enter the purchase amount: ")
	if !ok {
		return false
	}
	if _, err := c.ledger.CheckPurchase(input); err != nil {
		c.println(errorMessage(err))
		return true
	}
	description, ok := c.prompt("Enter the purchase name: ")
	if !ok {
		return false
	}
	balance, record, err := c.ledger.Purchase(ctx, input, description)
	if err != nil {
		c.println(errorMessage(err))
		return true
	}
	c.printf("Purchase %q for %.2f completed. Current balance: %.2f\n", record.Description, record.Amount, balance)
	return true
}

func (c *Console) showHistory() {
	history := c.ledger.ListHistory()
	if len(history) == 0 {
		c.println("Purchase history is empty.")
		return
	}
	c.println("Purchase history:")
	for i, r := range history {
		c.printf("%d. Description: %s, Amount: %.2f\n", i+1, r.Description, r.Amount)
	}
}

// errorMessage 將業務錯誤轉為使用者看得懂的訊息
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Invalid input. Please enter a number."
	case errors.Is(err, domain.ErrNonPositiveAmount):
		return "Amount must be positive."
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient funds."
	default:
		return "Error: " + err.Error()
	}
}

// prompt 顯示提示並讀取一行；輸入結束時 ok 為 false
func (c *Console) prompt(text string) (string, bool) {
	c.printf("%s", text)
	if !c.scanner.Scan() {
		c.println("")
		return "", false
	}
	return c.scanner.Text(), true
}

func (c *Console) println(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
