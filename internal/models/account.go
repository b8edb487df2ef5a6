package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeCash        = "cash"
	AccountTypeBank        = "bank"
	AccountTypeChecking    = "checking"
	AccountTypeSavings     = "savings"
	AccountTypeMoneyMarket = "money_market"
	AccountTypeCredit      = "credit"

	DefaultCurrency = "USD"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidCurrency    = errors.New("currency must be a 3-letter ISO code")
)

// ofxAccountTypes maps stored account types to the ACCTTYPE tokens the OFX
// wire format expects. Tokens follow OFX 2.2 section 11.3.1.
var ofxAccountTypes = map[string]string{
	AccountTypeCash:        "CASH",
	AccountTypeBank:        "BANK",
	AccountTypeChecking:    "CHECKING",
	AccountTypeSavings:     "SAVINGS",
	AccountTypeMoneyMarket: "MONEYMRKT",
	AccountTypeCredit:      "CREDITLINE",
}

// Account represents a ledger account
type Account struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UID         string          `gorm:"type:varchar(40);uniqueIndex;not null" json:"uid"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	AccountType string          `gorm:"type:varchar(20);not null" json:"account_type"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	// TransactionCount is populated by repository list queries via a
	// correlated subquery. It is never written to the database.
	TransactionCount int64 `gorm:"->;-:migration" json:"transaction_count"`

	// Associations
	Transactions []Transaction `gorm:"foreignKey:AccountUID;references:UID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	// The UID is the stable identifier exported to external software.
	if a.UID == "" {
		a.UID = uuid.New().String()
	}

	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.Name == "" {
		return errors.New("account name is required")
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if len(a.Currency) != 3 {
		return ErrInvalidCurrency
	}

	return nil
}

// OFXAccountType returns the ACCTTYPE token for the account's type.
// Unknown values fall back to BANK so a stale row never produces an
// empty element.
func (a *Account) OFXAccountType() string {
	if token, ok := ofxAccountTypes[a.AccountType]; ok {
		return token
	}
	return "BANK"
}

// BalanceString renders the balance at the ledger's fixed scale of two
// decimal places. decimal.String would trim trailing zeros ("12.5"), which
// importers reject; StringFixed keeps the exact column precision.
func (a *Account) BalanceString() string {
	return a.Balance.StringFixed(2)
}

// HasTransactions reports whether the account holds at least one transaction,
// based on the repository-populated count.
func (a *Account) HasTransactions() bool {
	return a.TransactionCount > 0
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	_, ok := ofxAccountTypes[accountType]
	return ok
}
