package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-console-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-console-ledger/pkg/journal"
)

func TestPrintJournal(t *testing.T) {
	j, err := journal.Open(filepath.Join(t.TempDir(), "journal.log"))
	require.NoError(t, err)
	defer j.Close()

	require.NoError(t, j.Append(domain.NewTransaction(domain.TransactionTypeDeposit, 1000, "", 1000)))
	require.NoError(t, j.Append(domain.NewTransaction(domain.TransactionTypePurchase, 500, "Test Purchase", 500)))

	var out bytes.Buffer
	require.NoError(t, printJournal(j, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "deposit  amount=1000.00 balance=1000.00")
	assert.Contains(t, lines[1], "purchase amount=500.00 balance=500.00 Test Purchase")
}
