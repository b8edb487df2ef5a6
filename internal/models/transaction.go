package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeCredit = "CREDIT"
	TransactionTypeDebit  = "DEBIT"
)

var (
	ErrMissingAccountUID = errors.New("account UID is required")
	ErrMissingPostedAt   = errors.New("posted timestamp is required")
)

// Transaction represents a single ledger entry belonging to one account.
// The Exported flag records whether the transaction has already been included
// in a default (non export-all) export run; flipping it back to false makes
// the transaction eligible again.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountUID  string          `gorm:"type:varchar(40);not null;index" json:"account_uid"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Memo        string          `gorm:"type:text" json:"memo,omitempty"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Exported    bool            `gorm:"not null;default:false;index" json:"exported"`
	PostedAt    time.Time       `gorm:"not null;index" json:"posted_at"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.PostedAt.IsZero() {
		t.PostedAt = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountUID == "" {
		return ErrMissingAccountUID
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	if t.PostedAt.IsZero() {
		return ErrMissingPostedAt
	}

	return nil
}

// OFXTransactionType returns the TRNTYPE token for the transaction.
// The sign of the amount decides: negative amounts are debits.
func (t *Transaction) OFXTransactionType() string {
	if t.Amount.IsNegative() {
		return TransactionTypeDebit
	}
	return TransactionTypeCredit
}

// AmountString renders the signed amount at the ledger's fixed scale of two
// decimal places, matching the TRNAMT wire rendering.
func (t *Transaction) AmountString() string {
	return t.Amount.StringFixed(2)
}

// FITID returns the financial institution transaction ID exported for this
// transaction. The row ID is stable across export runs, which lets importers
// deduplicate.
func (t *Transaction) FITID() string {
	return t.ID.String()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
