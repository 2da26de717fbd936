package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/core/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PresetServiceTestSuite struct {
	suite.Suite
	presetRepo  *MockPresetRepository
	accountRepo *MockAccountRepository
	service     portssvc.PresetSvcFacade
}

func (suite *PresetServiceTestSuite) SetupTest() {
	suite.presetRepo = new(MockPresetRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.service = services.NewPresetService(suite.presetRepo, suite.accountRepo)
}

func TestPresetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PresetServiceTestSuite))
}

func planAccount(id, planID, name string, kind domain.AccountKind) domain.Account {
	return domain.Account{AccountID: id, PlanID: planID, Name: name, Kind: kind, IsActive: true}
}

func (suite *PresetServiceTestSuite) TestCreatePreset_Success() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"rev", "exp"}).Return(map[string]domain.Account{
		"rev": planAccount("rev", "plan-1", "Consulting", domain.Analytic),
		"exp": planAccount("exp", "plan-1", "Rent", domain.Analytic),
	}, nil).Once()
	suite.presetRepo.On("SavePreset", mock.Anything, mock.MatchedBy(func(p domain.Preset) bool {
		return p.Name == "Default" && p.IsActive && p.RevenueAccountName == "Consulting" && p.ExpenseAccountName == "Rent" &&
			p.PayableAccountName == "" && p.CreatedBy == "user-1"
	})).Return(nil).Once()

	preset, err := suite.service.CreatePreset(ctx, dto.CreatePresetRequest{
		Name:             " Default ",
		RevenueAccountID: strPtr("rev"),
		ExpenseAccountID: strPtr("exp"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(preset.PresetID)
	suite.Equal("Default", preset.Name)
	suite.presetRepo.AssertExpectations(suite.T())
}

func (suite *PresetServiceTestSuite) TestCreatePreset_AccountRules() {
	tests := []struct {
		name     string
		accounts map[string]domain.Account
		wantErr  error
	}{
		{"synthetic account", map[string]domain.Account{
			"rev": planAccount("rev", "plan-1", "Revenues", domain.Synthetic),
			"exp": planAccount("exp", "plan-1", "Rent", domain.Analytic),
		}, apperrors.ErrNonAnalyticAccount},
		{"accounts span two plans", map[string]domain.Account{
			"rev": planAccount("rev", "plan-1", "Consulting", domain.Analytic),
			"exp": planAccount("exp", "plan-2", "Rent", domain.Analytic),
		}, apperrors.ErrPlanMismatch},
		{"missing account", map[string]domain.Account{
			"rev": planAccount("rev", "plan-1", "Consulting", domain.Analytic),
		}, apperrors.ErrValidation},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"rev", "exp"}).Return(tc.accounts, nil).Once()

			preset, err := suite.service.CreatePreset(context.Background(), dto.CreatePresetRequest{
				Name:             "Default",
				RevenueAccountID: strPtr("rev"),
				ExpenseAccountID: strPtr("exp"),
			}, "user-1")

			suite.Nil(preset)
			suite.ErrorIs(err, tc.wantErr)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.presetRepo.AssertNotCalled(suite.T(), "SavePreset", mock.Anything, mock.Anything)
		})
	}
}

func (suite *PresetServiceTestSuite) TestCreatePreset_WithoutAccounts() {
	suite.presetRepo.On("SavePreset", mock.Anything, mock.AnythingOfType("domain.Preset")).Return(nil).Once()

	preset, err := suite.service.CreatePreset(context.Background(), dto.CreatePresetRequest{Name: "Placeholder"}, "user-1")

	suite.Require().NoError(err)
	suite.Empty(preset.AccountIDs())
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *PresetServiceTestSuite) TestUpdatePreset_RecapturesNames() {
	ctx := context.Background()
	existing := &domain.Preset{
		PresetID:           "preset-1",
		Name:               "Default",
		RevenueAccountID:   "rev-old",
		RevenueAccountName: "Old services",
		IsActive:           true,
	}
	suite.presetRepo.On("FindPresetByID", mock.Anything, "preset-1").Return(existing, nil).Once()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"rev-new"}).Return(map[string]domain.Account{
		"rev-new": planAccount("rev-new", "plan-1", "Consulting", domain.Analytic),
	}, nil).Once()
	suite.presetRepo.On("UpdatePreset", mock.Anything, mock.MatchedBy(func(p domain.Preset) bool {
		return p.RevenueAccountID == "rev-new" && p.RevenueAccountName == "Consulting" && p.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	preset, err := suite.service.UpdatePreset(ctx, "preset-1", dto.UpdatePresetRequest{RevenueAccountID: strPtr("rev-new")}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("Consulting", preset.RevenueAccountName)
	suite.presetRepo.AssertExpectations(suite.T())
}

func (suite *PresetServiceTestSuite) TestUpdatePreset_KeepsNamesWhenReferencesUnchanged() {
	existing := &domain.Preset{
		PresetID:           "preset-1",
		Name:               "Default",
		RevenueAccountID:   "rev",
		RevenueAccountName: "Consulting",
		IsActive:           true,
	}
	suite.presetRepo.On("FindPresetByID", mock.Anything, "preset-1").Return(existing, nil).Once()
	suite.presetRepo.On("UpdatePreset", mock.Anything, mock.MatchedBy(func(p domain.Preset) bool {
		return p.Name == "Services" && p.RevenueAccountName == "Consulting"
	})).Return(nil).Once()

	preset, err := suite.service.UpdatePreset(context.Background(), "preset-1", dto.UpdatePresetRequest{
		Name:             strPtr("Services"),
		RevenueAccountID: strPtr("rev"),
	}, "user-2")

	suite.Require().NoError(err)
	suite.Equal("Services", preset.Name)
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *PresetServiceTestSuite) TestUpdatePreset_RejectsCrossPlanReference() {
	existing := &domain.Preset{PresetID: "preset-1", Name: "Default", RevenueAccountID: "rev", RevenueAccountName: "Consulting", IsActive: true}
	suite.presetRepo.On("FindPresetByID", mock.Anything, "preset-1").Return(existing, nil).Once()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"rev", "exp"}).Return(map[string]domain.Account{
		"rev": planAccount("rev", "plan-1", "Consulting", domain.Analytic),
		"exp": planAccount("exp", "plan-2", "Rent", domain.Analytic),
	}, nil).Once()

	preset, err := suite.service.UpdatePreset(context.Background(), "preset-1", dto.UpdatePresetRequest{ExpenseAccountID: strPtr("exp")}, "user-2")

	suite.Nil(preset)
	suite.ErrorIs(err, apperrors.ErrPlanMismatch)
	suite.presetRepo.AssertNotCalled(suite.T(), "UpdatePreset", mock.Anything, mock.Anything)
}

func (suite *PresetServiceTestSuite) TestResolvePlan() {
	suite.Run("first bound account wins", func() {
		suite.SetupTest()
		suite.presetRepo.On("FindPresetByID", mock.Anything, "preset-1").
			Return(&domain.Preset{PresetID: "preset-1", ReceivableAccountID: "recv", ExpenseAccountID: "exp"}, nil).Once()
		suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"recv", "exp"}).Return(map[string]domain.Account{
			"recv": planAccount("recv", "plan-1", "Receivables", domain.Analytic),
			"exp":  planAccount("exp", "plan-1", "Rent", domain.Analytic),
		}, nil).Once()

		planID, err := suite.service.ResolvePlan(context.Background(), "preset-1")

		suite.Require().NoError(err)
		suite.Equal("plan-1", planID)
	})

	suite.Run("no bound accounts", func() {
		suite.SetupTest()
		suite.presetRepo.On("FindPresetByID", mock.Anything, "preset-1").
			Return(&domain.Preset{PresetID: "preset-1", Name: "Empty"}, nil).Once()

		planID, err := suite.service.ResolvePlan(context.Background(), "preset-1")

		suite.Empty(planID)
		suite.ErrorIs(err, apperrors.ErrUnboundPreset)
		suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
	})

	suite.Run("bound accounts deleted", func() {
		suite.SetupTest()
		suite.presetRepo.On("FindPresetByID", mock.Anything, "preset-1").
			Return(&domain.Preset{PresetID: "preset-1", RevenueAccountID: "gone"}, nil).Once()
		suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"gone"}).Return(map[string]domain.Account{}, nil).Once()

		_, err := suite.service.ResolvePlan(context.Background(), "preset-1")

		suite.ErrorIs(err, apperrors.ErrUnboundPreset)
	})

	suite.Run("preset not found", func() {
		suite.SetupTest()
		suite.presetRepo.On("FindPresetByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

		_, err := suite.service.ResolvePlan(context.Background(), "missing")

		suite.True(errors.Is(err, apperrors.ErrNotFound))
	})
}
