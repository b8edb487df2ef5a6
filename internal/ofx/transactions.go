package ofx

import (
	"fmt"

	"gnucash-export/internal/models"

	"github.com/beevik/etree"
)

// TransactionLister fetches the transactions an account should export.
// When exportAll is false only transactions not yet marked exported are
// returned.
type TransactionLister interface {
	GetForExport(accountUID string, exportAll bool) ([]models.Transaction, error)
}

// StoreTransactionSource is the store-backed TransactionSource: it fetches an
// account's transactions lazily and renders each as a STMTTRN block.
type StoreTransactionSource struct {
	transactions TransactionLister
}

// NewStoreTransactionSource creates a transaction source over the given store.
func NewStoreTransactionSource(transactions TransactionLister) *StoreTransactionSource {
	return &StoreTransactionSource{transactions: transactions}
}

// AppendTransactions renders the account's eligible transactions under
// parent, one STMTTRN per transaction in posted order.
func (s *StoreTransactionSource) AppendTransactions(parent *etree.Element, account *models.Account, exportAll bool) error {
	txns, err := s.transactions.GetForExport(account.UID, exportAll)
	if err != nil {
		return fmt.Errorf("failed to list transactions for account %s: %w", account.UID, err)
	}

	for i := range txns {
		txn := &txns[i]

		stmttrn := parent.CreateElement("STMTTRN")
		stmttrn.CreateElement("TRNTYPE").SetText(txn.OFXTransactionType())
		stmttrn.CreateElement("DTPOSTED").SetText(FormatTimestampWithOffset(txn.PostedAt))
		stmttrn.CreateElement("TRNAMT").SetText(txn.AmountString())
		stmttrn.CreateElement("FITID").SetText(txn.FITID())
		stmttrn.CreateElement("NAME").SetText(txn.Description)
		if txn.Memo != "" {
			stmttrn.CreateElement("MEMO").SetText(txn.Memo)
		}
	}

	return nil
}
