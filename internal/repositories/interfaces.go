package repositories

import (
	"gnucash-export/internal/models"

	"github.com/google/uuid"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByUID(uid string) (*models.Account, error)
	GetAll() ([]models.Account, error)
	GetExportable() ([]models.Account, error)
	Update(account *models.Account) error
	Delete(uid string) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetForExport(accountUID string, exportAll bool) ([]models.Transaction, error)
	CountByAccountUID(accountUID string) (int64, error)
	MarkAsExported(accountUID string) error
}
