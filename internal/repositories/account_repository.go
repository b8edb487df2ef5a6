package repositories

import (
	"errors"
	"fmt"

	"gnucash-export/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountUIDExists  = errors.New("account UID already exists")
	ErrAccountUIDMissing = errors.New("account UID is required")
)

// transactionCountSelect augments account rows with the number of
// transactions each account holds. List queries use it so callers can skip
// empty accounts without a round trip per account.
const transactionCountSelect = "accounts.*, " +
	"(SELECT COUNT(*) FROM transactions t WHERE t.account_uid = accounts.uid) AS transaction_count"

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountUIDExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByUID retrieves an account by its export identifier
func (r *accountRepository) GetByUID(uid string) (*models.Account, error) {
	if uid == "" {
		return nil, ErrAccountUIDMissing
	}

	var account models.Account
	if err := r.db.Model(&models.Account{}).
		Select(transactionCountSelect).
		Where("accounts.uid = ?", uid).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by UID: %w", err)
	}
	return &account, nil
}

// GetAll retrieves every account, oldest first, with transaction counts
func (r *accountRepository) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Model(&models.Account{}).
		Select(transactionCountSelect).
		Order("accounts.created_at ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// GetExportable retrieves accounts holding at least one transaction that has
// not been marked exported yet. The filtering happens store-side; consumers
// rely on every returned account being eligible.
func (r *accountRepository) GetExportable() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Model(&models.Account{}).
		Select(transactionCountSelect).
		Where("EXISTS (SELECT 1 FROM transactions t WHERE t.account_uid = accounts.uid AND t.exported = ?)", false).
		Order("accounts.created_at ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get exportable accounts: %w", err)
	}
	return accounts, nil
}

// Update updates an account
func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// Delete soft deletes an account by UID
func (r *accountRepository) Delete(uid string) error {
	result := r.db.Where("uid = ?", uid).Delete(&models.Account{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
