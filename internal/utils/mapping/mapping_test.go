package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/models"
	"github.com/SscSPs/accountflow_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountMapping_RootHasNullParent(t *testing.T) {
	m := mapping.ToModelAccount(domain.Account{AccountID: "a1", PlanID: "p1", Code: "1", Level: 1})
	assert.False(t, m.ParentAccountID.Valid)

	m.ParentAccountID = mapping.NullString("parent")
	d := mapping.ToDomainAccount(m)
	assert.Equal(t, "parent", d.ParentAccountID)
	assert.False(t, d.IsRoot())
}

func TestTitleMapping_Recurrence(t *testing.T) {
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	withRec := domain.Title{
		TitleID:    "t1",
		Amount:     decimal.RequireFromString("100.00"),
		DueDate:    due,
		Recurrence: &domain.Recurrence{Frequency: domain.Monthly, Occurrences: 12},
	}
	m := mapping.ToModelTitle(withRec)
	assert.True(t, m.RecurrenceFrequency.Valid)
	assert.Equal(t, int32(12), m.RecurrenceOccurrences.Int32)
	assert.False(t, m.PresetID.Valid)

	back := mapping.ToDomainTitle(m)
	if assert.NotNil(t, back.Recurrence) {
		assert.Equal(t, domain.Monthly, back.Recurrence.Frequency)
		assert.Equal(t, 12, back.Recurrence.Occurrences)
	}

	noRec := mapping.ToDomainTitle(mapping.ToModelTitle(domain.Title{TitleID: "t2"}))
	assert.Nil(t, noRec.Recurrence)
}

func TestTitleMapping_OpenEndedRecurrence(t *testing.T) {
	m := mapping.ToModelTitle(domain.Title{
		TitleID:    "t3",
		Recurrence: &domain.Recurrence{Frequency: domain.Weekly, Occurrences: 0},
	})
	assert.True(t, m.RecurrenceFrequency.Valid)
	assert.False(t, m.RecurrenceOccurrences.Valid, "zero occurrences must be stored as NULL")

	back := mapping.ToDomainTitle(m)
	if assert.NotNil(t, back.Recurrence) {
		assert.Equal(t, domain.Weekly, back.Recurrence.Frequency)
		assert.Equal(t, 0, back.Recurrence.Occurrences)
	}
}

func TestJournalMapping_KeepsLineOrder(t *testing.T) {
	lines := []domain.JournalLine{
		{LineID: "l1", AccountID: "a", Debit: decimal.NewFromInt(5), Credit: decimal.Zero},
		{LineID: "l2", AccountID: "b", Debit: decimal.Zero, Credit: decimal.NewFromInt(5)},
	}
	m1 := mapping.ToModelJournalLine(lines[0], 1)
	m2 := mapping.ToModelJournalLine(lines[1], 2)
	assert.Equal(t, 2, m2.LineNo)

	j := mapping.ToDomainJournal(mapping.ToModelJournal(domain.Journal{JournalID: "j1", ReferenceType: domain.RefTitleCreation}), []models.JournalLine{m1, m2})
	assert.Equal(t, domain.RefTitleCreation, j.ReferenceType)
	assert.Equal(t, []string{"a", "b"}, []string{j.Lines[0].AccountID, j.Lines[1].AccountID})
}
