package console_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-console-ledger/internal/app/core/adapter/in/console"
	"github.com/JoeShih716/go-console-ledger/internal/app/core/adapter/out/jsonfile"
	"github.com/JoeShih716/go-console-ledger/internal/app/core/usecase"
)

func newLedger(t *testing.T) *usecase.Ledger {
	t.Helper()
	dir := t.TempDir()
	store := jsonfile.NewStore(filepath.Join(dir, "balance.json"), filepath.Join(dir, "history.json"))
	return usecase.NewLedger(context.Background(), store, usecase.WithLogger(log.New(io.Discard, "", 0)))
}

func run(t *testing.T, ledger console.Ledger, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := console.NewConsole(ledger, strings.NewReader(input), &out).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestConsole_HappyPath(t *testing.T) {
	ledger := newLedger(t)
	out := run(t, ledger, "1\n1000\n2\n500\nTest Purchase\n3\n4\n")

	assert.Contains(t, out, "=== Bank account ===")
	assert.Contains(t, out, "Deposited 1000.00. Current balance: 1000.00")
	assert.Contains(t, out, `Purchase "Test Purchase" for 500.00 completed. Current balance: 500.00`)
	assert.Contains(t, out, "Purchase history:\n1. Description: Test Purchase, Amount: 500.00\n")
	assert.True(t, strings.HasSuffix(out, "Leaving the bank account.\n"))
	assert.Equal(t, 500.0, ledger.Balance())
}

func TestConsole_ErrorsKeepLoopRunning(t *testing.T) {
	ledger := newLedger(t)
	out := run(t, ledger, "1\nabc\n1\n0\n2\n500\n2\n-5\n3\n9\n4\n")

	assert.Contains(t, out, "Invalid input. Please enter a number.")
	assert.Contains(t, out, "Amount must be positive.")
	assert.Contains(t, out, "Insufficient funds.")
	assert.Contains(t, out, "Purchase history is empty.")
	assert.Contains(t, out, "Invalid menu option. Try again.")
	assert.Contains(t, out, "Leaving the bank account.")
	// 金額不合法時不會詢問購買名稱
	assert.NotContains(t, out, "Enter the purchase name")
	assert.Zero(t, ledger.Balance())
	assert.Empty(t, ledger.ListHistory())
}

func TestConsole_EOFEndsLoop(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantBalance float64
	}{
		{name: "empty input", input: "", wantBalance: 0},
		{name: "after menu choice", input: "1\n", wantBalance: 0},
		{name: "before purchase name", input: "1\n1000\n2\n10\n", wantBalance: 1000},
		{name: "no trailing newline", input: "1\n20", wantBalance: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newLedger(t)
			run(t, ledger, tt.input)
			assert.Equal(t, tt.wantBalance, ledger.Balance())
			assert.Empty(t, ledger.ListHistory())
		})
	}
}

type failingLedger struct {
	console.Ledger
}

func (failingLedger) Deposit(context.Context, string) (float64, error) {
	return 0, errors.New("unexpected")
}

func TestConsole_UnknownErrorIsShown(t *testing.T) {
	out := run(t, failingLedger{Ledger: newLedger(t)}, "1\n10\n4\n")
	assert.Contains(t, out, "Error: unexpected")
}
