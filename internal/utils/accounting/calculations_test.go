package accounting_test

import (
	"testing"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(account, debit, credit string) domain.JournalLine {
	return domain.JournalLine{
		AccountID: account,
		Debit:     decimal.RequireFromString(debit),
		Credit:    decimal.RequireFromString(credit),
	}
}

func TestValidateJournalBalance(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr bool
		total   string
	}{
		{
			name:  "balanced pair",
			lines: []domain.JournalLine{line("a", "100.00", "0"), line("b", "0", "100.00")},
			total: "100.00",
		},
		{
			name:  "split credit",
			lines: []domain.JournalLine{line("a", "100.00", "0"), line("b", "0", "60.00"), line("c", "0", "40.00")},
			total: "100.00",
		},
		{
			name:    "unbalanced",
			lines:   []domain.JournalLine{line("a", "100.00", "0"), line("b", "0", "99.99")},
			wantErr: true,
		},
		{
			name:    "single line",
			lines:   []domain.JournalLine{line("a", "100.00", "0")},
			wantErr: true,
		},
		{
			name:    "zero totals",
			lines:   []domain.JournalLine{line("a", "0", "0"), line("b", "0", "0")},
			wantErr: true,
		},
		{
			name:    "both sides on one line",
			lines:   []domain.JournalLine{line("a", "10", "10"), line("b", "0", "0")},
			wantErr: true,
		},
		{
			name:    "missing account",
			lines:   []domain.JournalLine{line("", "5", "0"), line("b", "0", "5")},
			wantErr: true,
		},
		{
			name:    "negative amount",
			lines:   []domain.JournalLine{line("a", "-5", "0"), line("b", "0", "-5")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			debits, credits, err := accounting.ValidateJournalBalance(tt.lines)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrUnbalancedPosting)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.total, debits.StringFixed(2))
			assert.True(t, debits.Equal(credits))
		})
	}
}

func TestRoundLines(t *testing.T) {
	out := accounting.RoundLines([]domain.JournalLine{line("a", "10.005", "0"), line("b", "0", "10.004")})
	assert.Equal(t, "10.01", out[0].Debit.StringFixed(2))
	assert.Equal(t, "10.00", out[1].Credit.StringFixed(2))
}
