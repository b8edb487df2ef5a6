package database

import (
	"fmt"
	"testing"
	"time"

	"gnucash-export/internal/config"
	"gnucash-export/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestAccount(t *testing.T, db *DB, accountType string) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:        gofakeit.ProductName(),
		AccountType: accountType,
		Currency:    models.DefaultCurrency,
		Balance:     decimal.NewFromFloat(gofakeit.Price(0, 10000)).Round(2),
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestTransaction(t *testing.T, db *DB, accountUID string, exported bool) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		AccountUID:  accountUID,
		Description: gofakeit.Sentence(3),
		Amount:      decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		Exported:    exported,
		PostedAt:    time.Now().Add(-time.Duration(gofakeit.Number(1, 72)) * time.Hour),
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
