package domain_test

import (
	"testing"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already two places", in: "10.25", want: "10.25"},
		{name: "half rounds up", in: "10.125", want: "10.13"},
		{name: "below half rounds down", in: "10.124", want: "10.12"},
		{name: "integer", in: "7", want: "7.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.RoundMoney(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestIsActiveFor(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		settled string
		want    bool
	}{
		{name: "nothing settled", amount: "100.00", settled: "0", want: true},
		{name: "partially settled", amount: "100.00", settled: "60.00", want: true},
		{name: "fully settled", amount: "100.00", settled: "100.00", want: false},
		{name: "rounding makes it settled", amount: "100.00", settled: "99.995", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.IsActiveFor(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.settled))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntry_References(t *testing.T) {
	e := domain.Entry{EntryID: "e1"}
	assert.Equal(t, "e1", e.SettlementReference())
	assert.Equal(t, "settle-rev:e1", e.ReversalReference())

	e.Revision = 2
	assert.Equal(t, "e1#2", e.SettlementReference())
	assert.Equal(t, "settle-rev:e1#2", e.ReversalReference())
}

func TestPreset_AccountIDsOrder(t *testing.T) {
	p := domain.Preset{RevenueAccountID: "rev", ReceivableAccountID: "rec"}
	assert.Equal(t, []string{"rec", "rev"}, p.AccountIDs())
	assert.Equal(t, "rev", p.PostingAccountFor(domain.Income))
	assert.Equal(t, "", p.PostingAccountFor(domain.Expense))
}

func TestJournalLine_Swapped(t *testing.T) {
	l := domain.JournalLine{AccountID: "a", Debit: decimal.NewFromInt(40), Credit: decimal.Zero, Memo: "m"}
	s := l.Swapped()
	assert.True(t, s.Debit.IsZero())
	assert.True(t, s.Credit.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "a", s.AccountID)
}
