package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/JoeShih716/go-console-ledger/internal/app/core/adapter/in/console"
	"github.com/JoeShih716/go-console-ledger/internal/app/core/adapter/out/jsonfile"
	mysql_adapter "github.com/JoeShih716/go-console-ledger/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-console-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-console-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-console-ledger/internal/config"
	"github.com/JoeShih716/go-console-ledger/pkg/journal"
	"github.com/JoeShih716/go-console-ledger/pkg/mysql"
)

func main() {
	baseDir := executableDir()
	configPath := flag.String("config", filepath.Join(baseDir, "config", "config.yaml"), "Path to the YAML config file")
	showJournal := flag.Bool("show-journal", false, "Print the journal entries and exit")
	flag.Parse()

	ctx := context.Background()

	// 1. 載入設定
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ResolvePaths(baseDir)

	// 2. 初始化 journal (選用)
	var opts []usecase.Option
	if cfg.Journal.Path != "" {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			log.Fatalf("Failed to open journal: %v", err)
		}
		defer j.Close()

		if *showJournal {
			if err := printJournal(j, os.Stdout); err != nil {
				log.Fatalf("Failed to read journal: %v", err)
			}
			return
		}
		opts = append(opts, usecase.WithJournal(j))
	} else if *showJournal {
		log.Fatalf("No journal configured")
	}

	// 3. 初始化 Store
	store, closeStore := newStore(ctx, cfg)
	defer closeStore()

	// 4. 初始化 Ledger 並進入選單
	ledger := usecase.NewLedger(ctx, store, opts...)
	if err := console.NewConsole(ledger, os.Stdin, os.Stdout).Run(ctx); err != nil {
		log.Printf("Input error: %v", err)
	}
}

// newStore 依 storage.driver 建立 Store，並回傳釋放資源的函式
func newStore(ctx context.Context, cfg config.Config) (usecase.Store, func()) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMySQL:
		dbClient, err := mysql.NewClient(cfg.MySQL)
		if err != nil {
			log.Fatalf("Failed to connect to MySQL: %v", err)
		}
		store := mysql_adapter.NewStore(dbClient)
		if err := store.Migrate(ctx); err != nil {
			dbClient.Close()
			log.Fatalf("Failed to migrate MySQL schema: %v", err)
		}
		return store, func() { dbClient.Close() }
	default:
		return jsonfile.NewStore(cfg.Storage.BalanceFile, cfg.Storage.HistoryFile), func() {}
	}
}

func printJournal(j *journal.Journal, w io.Writer) error {
	return j.ReadAll(func(raw []byte) error {
		var tran domain.Transaction
		if err := json.Unmarshal(raw, &tran); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%s %-8s amount=%.2f balance=%.2f %s\n",
			tran.ID, tran.Type, tran.Amount, tran.Balance, tran.Description)
		return err
	})
}

// executableDir 回傳執行檔所在目錄，取不到時使用目前工作目錄
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
