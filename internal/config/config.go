package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-console-ledger/pkg/mysql"
)

// StorageDriver 決定使用哪種 Store
type StorageDriver string

const (
	StorageDriverJSON  StorageDriver = "json"
	StorageDriverMySQL StorageDriver = "mysql"
)

type StorageConfig struct {
	Driver      StorageDriver `yaml:"driver"`
	BalanceFile string        `yaml:"balance_file"`
	HistoryFile string        `yaml:"history_file"`
}

type JournalConfig struct {
	// Path 為空時不寫 journal
	Path string `yaml:"path"`
}

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Journal JournalConfig `yaml:"journal"`
	MySQL   mysql.Config  `yaml:"mysql"`
}

// Default 回傳未提供設定檔時使用的配置
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

// Load 讀取 YAML 設定檔並補全預設值；檔案不存在時回傳 Default()
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults 補全預設配置 (如果 yaml 沒寫)
func (c *Config) applyDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverJSON
	}
	if c.Storage.BalanceFile == "" {
		c.Storage.BalanceFile = "balance.json"
	}
	if c.Storage.HistoryFile == "" {
		c.Storage.HistoryFile = "history.json"
	}
	c.MySQL.ApplyDefaults()
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverJSON, StorageDriverMySQL:
		return nil
	default:
		return fmt.Errorf("invalid storage driver %q", c.Storage.Driver)
	}
}

// ResolvePaths 將相對路徑改為相對於 baseDir (通常是執行檔所在目錄)
func (c *Config) ResolvePaths(baseDir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}
	c.Storage.BalanceFile = resolve(c.Storage.BalanceFile)
	c.Storage.HistoryFile = resolve(c.Storage.HistoryFile)
	c.Journal.Path = resolve(c.Journal.Path)
}
