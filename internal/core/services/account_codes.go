package services

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
)

// codeSuffixWidth is the zero-padded width of a code segment at the given level.
func codeSuffixWidth(level int) int {
	if level <= 3 {
		return 1
	}
	return 3
}

// formatAccountCode renders the code of the seq-th account at level under parentCode.
func formatAccountCode(parentCode string, level int, seq int) string {
	if parentCode == "" {
		return strconv.Itoa(seq)
	}
	return fmt.Sprintf("%s.%0*d", parentCode, codeSuffixWidth(level), seq)
}

// nextAccountCode picks the code of a new account among siblingCodes. The sequence
// starts at count+1 and advances past codes still taken after earlier deletions.
func nextAccountCode(parentCode string, level int, siblingCodes []string) string {
	taken := make(map[string]struct{}, len(siblingCodes))
	for _, c := range siblingCodes {
		taken[c] = struct{}{}
	}
	for seq := len(siblingCodes) + 1; ; seq++ {
		code := formatAccountCode(parentCode, level, seq)
		if _, ok := taken[code]; !ok {
			return code
		}
	}
}

// childLevel returns the level of a new account under parent, or 1 for roots.
func childLevel(parent *domain.Account) int {
	if parent == nil {
		return 1
	}
	return parent.Level + 1
}
