package ofx

import (
	"fmt"
	"time"

	"gnucash-export/internal/models"

	"github.com/beevik/etree"
)

const (
	// BankID identifies this application as the originating institution in
	// exported documents.
	BankID = "org.gnucash.android"

	// UnsolicitedTransactionID is used as the TRNUID. The transaction ID is
	// normally the client ID sent in a request; exported data is not the
	// result of a request, so it is 0.
	UnsolicitedTransactionID = "0"
)

// TransactionSource renders an account's transactions as child elements of a
// given transaction-list element, honoring the export-all policy. Which
// transactions are included, and in what sub-element shape, is the source's
// decision; the builder only provides the attachment point.
type TransactionSource interface {
	AppendTransactions(parent *etree.Element, account *models.Account, exportAll bool) error
}

// ExportMarker persists that all of an account's currently-included
// transactions have been exported.
type ExportMarker interface {
	MarkAsExported(accountUID string) error
}

// Builder assembles the OFX response tree for a fixed snapshot of accounts.
// A Builder is constructed once per export run and used exactly once; the
// account list and the export-all flag never change after construction.
type Builder struct {
	accounts  []models.Account
	exportAll bool
	source    TransactionSource
	marker    ExportMarker
	clock     func() time.Time
}

// NewBuilder creates a builder over the given account snapshot. When
// exportAll is false the caller is expected to have selected only accounts
// holding at least one unexported transaction.
func NewBuilder(accounts []models.Account, exportAll bool, source TransactionSource, marker ExportMarker) *Builder {
	return &Builder{
		accounts:  accounts,
		exportAll: exportAll,
		source:    source,
		marker:    marker,
		clock:     time.Now,
	}
}

// ToXML builds the OFX element tree under parent: one BANKMSGSRSV1 envelope
// holding a single STMTTRNRS, and one STMTRS statement per account that has
// at least one transaction.
//
// All timestamps within a run (DTSTART, DTEND, DTASOF) come from a single
// clock reading, so a slow run stays internally consistent.
//
// The first error aborts the whole run; no partial document is valid.
// Accounts already marked exported earlier in a failed run are not rolled
// back.
func (b *Builder) ToXML(parent *etree.Element) error {
	bankmsgs := parent.CreateElement("BANKMSGSRSV1")
	trnrs := bankmsgs.CreateElement("STMTTRNRS")
	trnrs.CreateElement("TRNUID").SetText(UnsolicitedTransactionID)

	now := FormatTimestampWithOffset(b.clock())

	for i := range b.accounts {
		account := &b.accounts[i]
		if !account.HasTransactions() {
			continue
		}

		stmtrs := etree.NewElement("STMTRS")
		stmtrs.CreateElement("CURDEF").SetText(account.Currency)

		acctFrom := stmtrs.CreateElement("BANKACCTFROM")
		acctFrom.CreateElement("BANKID").SetText(BankID)
		acctFrom.CreateElement("ACCTID").SetText(account.UID)
		acctFrom.CreateElement("ACCTTYPE").SetText(account.OFXAccountType())

		tranList := stmtrs.CreateElement("BANKTRANLIST")
		tranList.CreateElement("DTSTART").SetText(now)
		tranList.CreateElement("DTEND").SetText(now)

		ledgerBal := stmtrs.CreateElement("LEDGERBAL")
		ledgerBal.CreateElement("BALAMT").SetText(account.BalanceString())
		ledgerBal.CreateElement("DTASOF").SetText(now)

		trnrs.AddChild(stmtrs)

		if err := b.source.AppendTransactions(tranList, account, b.exportAll); err != nil {
			return fmt.Errorf("failed to render transactions for account %s: %w", account.UID, err)
		}

		// Marking must follow a fully attached subtree: a failure above must
		// not advance any exported flags for this account.
		if err := b.marker.MarkAsExported(account.UID); err != nil {
			return fmt.Errorf("failed to mark account %s as exported: %w", account.UID, err)
		}
	}

	return nil
}
