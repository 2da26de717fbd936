package accounting

import (
	"fmt"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RoundLines rounds every line amount to the money scale.
func RoundLines(lines []domain.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		l.Debit = domain.RoundMoney(l.Debit)
		l.Credit = domain.RoundMoney(l.Credit)
		out[i] = l
	}
	return out
}

// ValidateJournalBalance checks a journal's lines and returns its totals.
// Each line must name an account and carry exactly one positive side;
// total debits must equal total credits and be greater than zero.
// Amounts are expected to be rounded already.
func ValidateJournalBalance(lines []domain.JournalLine) (decimal.Decimal, decimal.Decimal, error) {
	if len(lines) < 2 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: a journal needs at least two lines", apperrors.ErrUnbalancedPosting)
	}

	debits, credits := decimal.Zero, decimal.Zero
	for i, l := range lines {
		if l.AccountID == "" {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: line %d has no account", apperrors.ErrUnbalancedPosting, i+1)
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrUnbalancedPosting, i+1)
		}
		// Exactly one side per line
		if l.Debit.IsPositive() == l.Credit.IsPositive() {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: line %d must carry either a debit or a credit", apperrors.ErrUnbalancedPosting, i+1)
		}
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}

	if !debits.IsPositive() || !debits.Equal(credits) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalancedPosting, debits.StringFixed(2), credits.StringFixed(2))
	}
	return debits, credits, nil
}
