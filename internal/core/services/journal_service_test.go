package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	journalRepo *MockJournalRepository
	accountRepo *MockAccountRepository
	presets     *MockPresetReader
	controls    *MockControlResolver
	service     portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.journalRepo = new(MockJournalRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.presets = new(MockPresetReader)
	suite.controls = new(MockControlResolver)
	suite.service = services.NewJournalService(suite.journalRepo, suite.accountRepo, suite.presets, suite.controls)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

var (
	testPreset = &domain.Preset{
		PresetID:         "preset-1",
		Name:             "Services",
		RevenueAccountID: "revenue",
		ExpenseAccountID: "expense",
		IsActive:         true,
	}
	testControls = domain.ControlAccounts{ReceivableAccountID: "receivable", PayableAccountID: "payable"}
)

func analytic(ids ...string) map[string]domain.Account {
	out := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		out[id] = domain.Account{AccountID: id, PlanID: "plan-1", Kind: domain.Analytic, IsActive: true}
	}
	return out
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTitle(titleType domain.TitleType, amount string) domain.Title {
	return domain.Title{
		TitleID:     "title-1",
		CompanyID:   "company-1",
		Description: "Consulting",
		Type:        titleType,
		Amount:      dec(amount),
		DueDate:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
		PresetID:    "preset-1",
		AuditFields: domain.NewAuditFields(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), "user-1"),
	}
}

func (suite *JournalServiceTestSuite) expectConfigured() {
	suite.presets.On("ResolvePresetPlan", mock.Anything, "preset-1").Return(testPreset, "plan-1", nil)
	suite.controls.On("ResolveControlAccounts", mock.Anything, "plan-1").Return(testControls, nil)
}

func (suite *JournalServiceTestSuite) TestPostTitleCreation_Income() {
	title := newTitle(domain.Income, "100.00")
	suite.expectConfigured()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"receivable", "revenue"}).Return(analytic("receivable", "revenue"), nil).Once()
	suite.journalRepo.On("FindJournalByReference", mock.Anything, domain.RefTitleCreation, "title-1").Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.Journal
	suite.journalRepo.On("SaveJournal", mock.Anything, mock.AnythingOfType("domain.Journal")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Journal) }).
		Return(nil).Once()

	journal, err := suite.service.PostTitleCreation(context.Background(), title, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(journal)
	suite.Equal(domain.RefTitleCreation, saved.ReferenceType)
	suite.Equal("title-1", saved.ReferenceID)
	suite.Equal("company-1", saved.CompanyID)
	suite.True(saved.JournalDate.Equal(title.CreatedAt))
	suite.Require().Len(saved.Lines, 2)
	suite.Equal("receivable", saved.Lines[0].AccountID)
	suite.True(saved.Lines[0].Debit.Equal(dec("100")))
	suite.True(saved.Lines[0].Credit.IsZero())
	suite.Equal("revenue", saved.Lines[1].AccountID)
	suite.True(saved.Lines[1].Credit.Equal(dec("100")))
	suite.True(saved.TotalDebits.Equal(saved.TotalCredits))
	for _, l := range saved.Lines {
		suite.Equal(saved.JournalID, l.JournalID)
		suite.NotEmpty(l.LineID)
	}
	suite.journalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostTitleCreation_Expense() {
	title := newTitle(domain.Expense, "42.50")
	suite.expectConfigured()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"expense", "payable"}).Return(analytic("expense", "payable"), nil).Once()
	suite.journalRepo.On("FindJournalByReference", mock.Anything, domain.RefTitleCreation, "title-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.journalRepo.On("SaveJournal", mock.Anything, mock.MatchedBy(func(j domain.Journal) bool {
		return j.Lines[0].AccountID == "expense" && j.Lines[0].Debit.Equal(dec("42.50")) &&
			j.Lines[1].AccountID == "payable" && j.Lines[1].Credit.Equal(dec("42.50"))
	})).Return(nil).Once()

	journal, err := suite.service.PostTitleCreation(context.Background(), title, "user-1")

	suite.Require().NoError(err)
	suite.NotNil(journal)
	suite.journalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostTitleCreation_Skipped() {
	suite.Run("no preset", func() {
		suite.SetupTest()
		title := newTitle(domain.Income, "10.00")
		title.PresetID = ""

		journal, err := suite.service.PostTitleCreation(context.Background(), title, "user-1")

		suite.NoError(err)
		suite.Nil(journal)
		suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
	})

	suite.Run("control account unset", func() {
		suite.SetupTest()
		suite.presets.On("ResolvePresetPlan", mock.Anything, "preset-1").Return(testPreset, "plan-1", nil)
		suite.controls.On("ResolveControlAccounts", mock.Anything, "plan-1").Return(domain.ControlAccounts{}, nil)

		journal, err := suite.service.PostTitleCreation(context.Background(), newTitle(domain.Income, "10.00"), "user-1")

		suite.NoError(err)
		suite.Nil(journal)
		suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
	})

	suite.Run("unbound preset", func() {
		suite.SetupTest()
		unbound := &domain.Preset{PresetID: "preset-1", Name: "Empty", IsActive: true}
		suite.presets.On("ResolvePresetPlan", mock.Anything, "preset-1").Return(unbound, "", apperrors.ErrUnboundPreset)

		journal, err := suite.service.PostTitleCreation(context.Background(), newTitle(domain.Expense, "10.00"), "user-1")

		suite.NoError(err)
		suite.Nil(journal)
	})

	suite.Run("synthetic target account", func() {
		suite.SetupTest()
		suite.expectConfigured()
		accounts := analytic("receivable")
		accounts["revenue"] = domain.Account{AccountID: "revenue", PlanID: "plan-1", Kind: domain.Synthetic}
		suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"receivable", "revenue"}).Return(accounts, nil).Once()

		journal, err := suite.service.PostTitleCreation(context.Background(), newTitle(domain.Income, "10.00"), "user-1")

		suite.NoError(err)
		suite.Nil(journal)
		suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
	})
}

func (suite *JournalServiceTestSuite) TestPostTitleCreation_ReturnsExistingJournal() {
	existing := &domain.Journal{JournalID: "journal-1", ReferenceType: domain.RefTitleCreation, ReferenceID: "title-1"}
	suite.expectConfigured()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"receivable", "revenue"}).Return(analytic("receivable", "revenue"), nil).Once()
	suite.journalRepo.On("FindJournalByReference", mock.Anything, domain.RefTitleCreation, "title-1").Return(existing, nil).Once()

	journal, err := suite.service.PostTitleCreation(context.Background(), newTitle(domain.Income, "100.00"), "user-1")

	suite.Require().NoError(err)
	suite.Equal("journal-1", journal.JournalID)
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestPostTitleCreation_StorageFailure() {
	dbErr := errors.New("connection refused")
	suite.expectConfigured()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"receivable", "revenue"}).Return(analytic("receivable", "revenue"), nil).Once()
	suite.journalRepo.On("FindJournalByReference", mock.Anything, domain.RefTitleCreation, "title-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.journalRepo.On("SaveJournal", mock.Anything, mock.AnythingOfType("domain.Journal")).Return(dbErr).Once()

	journal, err := suite.service.PostTitleCreation(context.Background(), newTitle(domain.Income, "100.00"), "user-1")

	suite.Nil(journal)
	suite.ErrorIs(err, dbErr)
}

func (suite *JournalServiceTestSuite) TestPostTitleSettlement_Income() {
	title := newTitle(domain.Income, "100.00")
	entry := domain.Entry{
		EntryID:   "entry-1",
		TitleID:   "title-1",
		Amount:    dec("60.00"),
		PaidAt:    time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		AccountID: "bank",
	}
	suite.expectConfigured()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"bank", "receivable"}).Return(analytic("bank", "receivable"), nil).Once()
	suite.journalRepo.On("FindJournalByReference", mock.Anything, domain.RefTitleSettlement, "entry-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.journalRepo.On("SaveJournal", mock.Anything, mock.MatchedBy(func(j domain.Journal) bool {
		return j.JournalDate.Equal(entry.PaidAt) && j.Description == "Consulting" &&
			j.Lines[0].AccountID == "bank" && j.Lines[0].Debit.Equal(dec("60")) &&
			j.Lines[1].AccountID == "receivable" && j.Lines[1].Credit.Equal(dec("60"))
	})).Return(nil).Once()

	journal, err := suite.service.PostTitleSettlement(context.Background(), title, entry, "user-1")

	suite.Require().NoError(err)
	suite.NotNil(journal)
	suite.journalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostTitleSettlement_RevisionReference() {
	title := newTitle(domain.Expense, "100.00")
	entry := domain.Entry{EntryID: "entry-1", TitleID: "title-1", Amount: dec("25.00"), AccountID: "cash", Revision: 2}

	suite.expectConfigured()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"payable", "cash"}).Return(analytic("payable", "cash"), nil).Once()
	suite.journalRepo.On("FindJournalByReference", mock.Anything, domain.RefTitleSettlement, "entry-1#2").Return(nil, apperrors.ErrNotFound).Once()
	suite.journalRepo.On("SaveJournal", mock.Anything, mock.MatchedBy(func(j domain.Journal) bool {
		return j.ReferenceID == "entry-1#2" && j.Lines[0].AccountID == "payable" && j.Lines[1].AccountID == "cash"
	})).Return(nil).Once()

	journal, err := suite.service.PostTitleSettlement(context.Background(), title, entry, "user-1")

	suite.Require().NoError(err)
	suite.NotNil(journal)
	suite.journalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostTitleSettlement_Skipped() {
	entry := domain.Entry{EntryID: "entry-1", TitleID: "title-1", Amount: dec("10.00"), AccountID: "bank"}

	suite.Run("title without preset", func() {
		suite.SetupTest()
		title := newTitle(domain.Income, "10.00")
		title.PresetID = ""

		journal, err := suite.service.PostTitleSettlement(context.Background(), title, entry, "user-1")

		suite.NoError(err)
		suite.Nil(journal)
		suite.controls.AssertNotCalled(suite.T(), "ResolveControlAccounts", mock.Anything, mock.Anything)
		suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
		suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
	})

	suite.Run("unbound preset", func() {
		suite.SetupTest()
		unbound := &domain.Preset{PresetID: "preset-1", Name: "Empty", IsActive: true}
		suite.presets.On("ResolvePresetPlan", mock.Anything, "preset-1").
			Return(unbound, "", fmt.Errorf("%w: preset preset-1", apperrors.ErrUnboundPreset)).Once()

		journal, err := suite.service.PostTitleSettlement(context.Background(), newTitle(domain.Income, "10.00"), entry, "user-1")

		suite.NoError(err)
		suite.Nil(journal)
		suite.controls.AssertNotCalled(suite.T(), "ResolveControlAccounts", mock.Anything, mock.Anything)
		suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
	})
}

func (suite *JournalServiceTestSuite) TestCreateJournal_DuplicateReadBackOutsideFailedSave() {
	tm := &depthTxManager{}
	service := services.NewJournalService(suite.journalRepo, suite.accountRepo, suite.presets, suite.controls,
		services.WithTransactionManager(tm))
	existing := &domain.Journal{JournalID: "journal-9", ReferenceType: domain.RefTitleCreation, ReferenceID: "title-1"}

	suite.expectConfigured()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"receivable", "revenue"}).Return(analytic("receivable", "revenue"), nil).Once()
	suite.journalRepo.On("FindJournalByReference", txDepth(1), domain.RefTitleCreation, "title-1").Return(nil, apperrors.ErrNotFound).Once()
	// A concurrent writer got there first: the save fails inside its own nested unit.
	suite.journalRepo.On("SaveJournal", txDepth(2), mock.AnythingOfType("domain.Journal")).
		Return(fmt.Errorf("%w: journal for TITLE_CREATION title-1", apperrors.ErrDuplicate)).Once()
	suite.journalRepo.On("FindJournalByReference", txDepth(1), domain.RefTitleCreation, "title-1").Return(existing, nil).Once()

	journal, err := service.PostTitleCreation(context.Background(), newTitle(domain.Income, "100.00"), "user-1")

	suite.Require().NoError(err)
	suite.Equal("journal-9", journal.JournalID)
	suite.Equal(1, tm.failed, "only the nested save unit rolls back")
	suite.journalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostSettlementReversal() {
	entry := domain.Entry{
		EntryID:   "entry-1",
		TitleID:   "title-1",
		Amount:    dec("60.00"),
		AccountID: "bank",
		PaidAt:    time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.Run("swaps the settlement lines", func() {
		suite.SetupTest()
		original := &domain.Journal{
			JournalID:     "journal-1",
			CompanyID:     "company-1",
			Description:   "Consulting",
			ReferenceType: domain.RefTitleSettlement,
			ReferenceID:   "entry-1",
			Lines: []domain.JournalLine{
				{LineID: "l1", JournalID: "journal-1", AccountID: "bank", Debit: dec("60"), Credit: decimal.Zero},
				{LineID: "l2", JournalID: "journal-1", AccountID: "receivable", Debit: decimal.Zero, Credit: dec("60")},
			},
		}
		suite.journalRepo.On("FindJournalByReference", mock.Anything, domain.RefTitleSettlement, "entry-1").Return(original, nil).Once()
		suite.journalRepo.On("FindJournalByReference", mock.Anything, domain.RefTitleSettlementReversal, "settle-rev:entry-1").Return(nil, apperrors.ErrNotFound).Once()

		var saved domain.Journal
		suite.journalRepo.On("SaveJournal", mock.Anything, mock.AnythingOfType("domain.Journal")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Journal) }).
			Return(nil).Once()

		journal, err := suite.service.PostSettlementReversal(context.Background(), entry, "user-1")

		suite.Require().NoError(err)
		suite.Require().NotNil(journal)
		suite.Equal(domain.RefTitleSettlementReversal, saved.ReferenceType)
		suite.Equal("company-1", saved.CompanyID)
		suite.Require().Len(saved.Lines, 2)
		suite.Equal("bank", saved.Lines[0].AccountID)
		suite.True(saved.Lines[0].Credit.Equal(dec("60")))
		suite.True(saved.Lines[0].Debit.IsZero())
		suite.Equal("receivable", saved.Lines[1].AccountID)
		suite.True(saved.Lines[1].Debit.Equal(dec("60")))
		suite.NotEqual("l1", saved.Lines[0].LineID)
		suite.True(saved.JournalDate.Equal(entry.PaidAt), "reversal dated %s", saved.JournalDate)
	})

	suite.Run("nothing to reverse", func() {
		suite.SetupTest()
		suite.journalRepo.On("FindJournalByReference", mock.Anything, domain.RefTitleSettlement, "entry-1").Return(nil, apperrors.ErrNotFound).Once()

		journal, err := suite.service.PostSettlementReversal(context.Background(), entry, "user-1")

		suite.NoError(err)
		suite.Nil(journal)
		suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything)
	})
}

func (suite *JournalServiceTestSuite) TestGetJournalByReference_UnknownType() {
	journal, err := suite.service.GetJournalByReference(context.Background(), domain.ReferenceType("MANUAL"), "x")

	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestListJournals_EmptyIsNotNil() {
	suite.journalRepo.On("ListJournalsByCompany", mock.Anything, "company-1", 20, 0).Return(nil, nil).Once()

	journals, err := suite.service.ListJournals(context.Background(), "company-1", 20, 0)

	suite.NoError(err)
	suite.NotNil(journals)
	suite.Empty(journals)
}
