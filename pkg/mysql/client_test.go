package mysql

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 3307, User: "bank", Password: "secret", DBName: "ledger"}
	assert.Equal(t, "bank:secret@tcp(db:3307)/ledger?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN())
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{MaxOpenConns: 50}
	cfg.ApplyDefaults()

	assert.Equal(t, 3306, cfg.Port)
	assert.Equal(t, 50, cfg.MaxOpenConns)
	assert.Equal(t, 2, cfg.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 10, cfg.ConnectRetries)
	assert.Equal(t, 2*time.Second, cfg.RetryInterval)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logger.LogLevel
	}{
		{"info", logger.Info},
		{"warn", logger.Warn},
		{"error", logger.Error},
		{"silent", logger.Silent},
		{"", logger.Error},
		{"verbose", logger.Error},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.level))
		})
	}
}

func TestNewClientFromDB(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	client := NewClientFromDB(db)
	assert.Same(t, db, client.DB())

	mock.ExpectClose()
	require.NoError(t, client.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}
