package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountValidate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr bool
	}{
		{
			name: "valid checking account",
			account: Account{
				Name:        "Everyday Checking",
				AccountType: AccountTypeChecking,
				Currency:    "USD",
			},
			wantErr: false,
		},
		{
			name: "valid cash account",
			account: Account{
				Name:        "Wallet",
				AccountType: AccountTypeCash,
				Currency:    "EUR",
			},
			wantErr: false,
		},
		{
			name: "missing name",
			account: Account{
				AccountType: AccountTypeBank,
				Currency:    "USD",
			},
			wantErr: true,
		},
		{
			name: "unknown account type",
			account: Account{
				Name:        "Mystery",
				AccountType: "brokerage",
				Currency:    "USD",
			},
			wantErr: true,
		},
		{
			name: "bad currency code",
			account: Account{
				Name:        "Wallet",
				AccountType: AccountTypeCash,
				Currency:    "US",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountOFXAccountType(t *testing.T) {
	tests := []struct {
		accountType string
		want        string
	}{
		{AccountTypeCash, "CASH"},
		{AccountTypeBank, "BANK"},
		{AccountTypeChecking, "CHECKING"},
		{AccountTypeSavings, "SAVINGS"},
		{AccountTypeMoneyMarket, "MONEYMRKT"},
		{AccountTypeCredit, "CREDITLINE"},
		{"brokerage", "BANK"},
	}

	for _, tt := range tests {
		t.Run(tt.accountType, func(t *testing.T) {
			a := Account{AccountType: tt.accountType}
			assert.Equal(t, tt.want, a.OFXAccountType())
		})
	}
}

func TestAccountHasTransactions(t *testing.T) {
	a := Account{TransactionCount: 0}
	assert.False(t, a.HasTransactions())

	a.TransactionCount = 2
	assert.True(t, a.HasTransactions())
}

func TestAccountBalanceRendersExactly(t *testing.T) {
	a := Account{Balance: decimal.RequireFromString("12.50")}

	// Exported balances must keep their column precision, no float drift
	// and no trailing-zero truncation.
	assert.Equal(t, "12.50", a.BalanceString())
	assert.NotEqual(t, "12.5", a.BalanceString())
}

func TestIsValidAccountType(t *testing.T) {
	assert.True(t, IsValidAccountType(AccountTypeSavings))
	assert.False(t, IsValidAccountType(""))
	assert.False(t, IsValidAccountType("CHECKING")) // tokens are not storage values
}
