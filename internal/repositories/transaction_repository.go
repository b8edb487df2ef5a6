package repositories

import (
	"errors"
	"fmt"

	"gnucash-export/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	if err := r.db.Create(&transactions).Error; err != nil {
		return fmt.Errorf("failed to create transactions: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetForExport retrieves the transactions an account should export, in
// posted order. With exportAll false, transactions already marked exported
// are excluded; with exportAll true, prior export state is ignored.
func (r *transactionRepository) GetForExport(accountUID string, exportAll bool) ([]models.Transaction, error) {
	query := r.db.Where("account_uid = ?", accountUID)
	if !exportAll {
		query = query.Where("exported = ?", false)
	}

	var transactions []models.Transaction
	if err := query.Order("posted_at ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for export: %w", err)
	}
	return transactions, nil
}

// CountByAccountUID counts the transactions belonging to an account
func (r *transactionRepository) CountByAccountUID(accountUID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("account_uid = ?", accountUID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// MarkAsExported flags all of an account's transactions as exported. Callers
// invoke this only after the account's statement subtree is fully built, so a
// failed build never advances export state.
func (r *transactionRepository) MarkAsExported(accountUID string) error {
	if err := r.db.Model(&models.Transaction{}).
		Where("account_uid = ?", accountUID).
		Update("exported", true).Error; err != nil {
		return fmt.Errorf("failed to mark transactions as exported: %w", err)
	}
	return nil
}
