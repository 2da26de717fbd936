package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	"github.com/SscSPs/accountflow_ledger/internal/core/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BillingPlanServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	planRepo    *MockBillingPlanRepository
}

func (suite *BillingPlanServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.planRepo = new(MockBillingPlanRepository)
}

func TestBillingPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingPlanServiceTestSuite))
}

// legacyChart is ordered by code, the way ListAccountsByPlan returns it.
func legacyChart() []domain.Account {
	return []domain.Account{
		{AccountID: "assets", PlanID: "plan-1", Name: "Ativo", Kind: domain.Synthetic, Code: "1", IsActive: true},
		{AccountID: "old-recv", PlanID: "plan-1", ParentAccountID: "assets", Name: "Contas a Receber (antiga)", Kind: domain.Analytic, Code: "1.1", IsActive: false},
		{AccountID: "recv", PlanID: "plan-1", ParentAccountID: "assets", Name: "Contas a Receber", Kind: domain.Analytic, Code: "1.2", IsActive: true},
		{AccountID: "expenses", PlanID: "plan-1", Name: "Despesas", Kind: domain.Synthetic, Code: "4", IsActive: true},
		{AccountID: "rent", PlanID: "plan-1", ParentAccountID: "expenses", Name: "Aluguel", Kind: domain.Analytic, Code: "4.1", IsActive: true},
	}
}

func (suite *BillingPlanServiceTestSuite) TestResolveControlAccounts_LookupDisabled() {
	svc := services.NewBillingPlanService(suite.planRepo, suite.accountRepo, services.DefaultLegacyControlLookup())
	suite.planRepo.On("FindPlanByID", mock.Anything, "plan-1").
		Return(&domain.BillingPlan{PlanID: "plan-1", ReceivableControlAccountID: "recv"}, nil).Once()

	resolved, err := svc.ResolveControlAccounts(context.Background(), "plan-1")

	suite.Require().NoError(err)
	suite.Equal("recv", resolved.ReceivableAccountID)
	suite.Empty(resolved.PayableAccountID)
	suite.accountRepo.AssertNotCalled(suite.T(), "ListAccountsByPlan", mock.Anything, mock.Anything)
}

func (suite *BillingPlanServiceTestSuite) TestResolveControlAccounts_LegacyLookup() {
	legacy := services.DefaultLegacyControlLookup()
	legacy.Enabled = true
	svc := services.NewBillingPlanService(suite.planRepo, suite.accountRepo, legacy)
	suite.planRepo.On("FindPlanByID", mock.Anything, "plan-1").
		Return(&domain.BillingPlan{PlanID: "plan-1"}, nil).Once()
	suite.accountRepo.On("ListAccountsByPlan", mock.Anything, "plan-1").Return(legacyChart(), nil).Once()

	resolved, err := svc.ResolveControlAccounts(context.Background(), "plan-1")

	suite.Require().NoError(err)
	// Inactive matches are skipped; payable falls back to the first child of "Despesas".
	suite.Equal("recv", resolved.ReceivableAccountID)
	suite.Equal("rent", resolved.PayableAccountID)
}

func (suite *BillingPlanServiceTestSuite) TestResolveControlAccounts_ExplicitWinsOverLegacy() {
	legacy := services.DefaultLegacyControlLookup()
	legacy.Enabled = true
	svc := services.NewBillingPlanService(suite.planRepo, suite.accountRepo, legacy)
	suite.planRepo.On("FindPlanByID", mock.Anything, "plan-1").
		Return(&domain.BillingPlan{PlanID: "plan-1", ReceivableControlAccountID: "r", PayableControlAccountID: "p"}, nil).Once()

	resolved, err := svc.ResolveControlAccounts(context.Background(), "plan-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ControlAccounts{ReceivableAccountID: "r", PayableAccountID: "p"}, resolved)
	suite.accountRepo.AssertNotCalled(suite.T(), "ListAccountsByPlan", mock.Anything, mock.Anything)
}

func (suite *BillingPlanServiceTestSuite) TestSetControlAccounts() {
	req := dto.SetControlAccountsRequest{ReceivableAccountID: "recv", PayableAccountID: "pay"}
	analytic := func(id, planID string) domain.Account {
		return domain.Account{AccountID: id, PlanID: planID, Kind: domain.Analytic, IsActive: true}
	}

	tests := []struct {
		name     string
		accounts map[string]domain.Account
		wantErr  bool
	}{
		{"accepted", map[string]domain.Account{"recv": analytic("recv", "plan-1"), "pay": analytic("pay", "plan-1")}, false},
		{"missing account", map[string]domain.Account{"recv": analytic("recv", "plan-1")}, true},
		{"other plan", map[string]domain.Account{"recv": analytic("recv", "plan-1"), "pay": analytic("pay", "plan-2")}, true},
		{"synthetic", map[string]domain.Account{
			"recv": analytic("recv", "plan-1"),
			"pay":  {AccountID: "pay", PlanID: "plan-1", Kind: domain.Synthetic, IsActive: true},
		}, true},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			svc := services.NewBillingPlanService(suite.planRepo, suite.accountRepo, services.DefaultLegacyControlLookup())
			suite.planRepo.On("FindPlanByID", mock.Anything, "plan-1").
				Return(&domain.BillingPlan{PlanID: "plan-1", Name: "Main"}, nil).Once()
			suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"recv", "pay"}).Return(tc.accounts, nil).Once()
			if !tc.wantErr {
				suite.planRepo.On("UpdatePlan", mock.Anything, mock.MatchedBy(func(p domain.BillingPlan) bool {
					return p.ReceivableControlAccountID == "recv" && p.PayableControlAccountID == "pay" && p.LastUpdatedBy == "user-1"
				})).Return(nil).Once()
			}

			plan, err := svc.SetControlAccounts(context.Background(), "plan-1", req, "user-1")

			if tc.wantErr {
				suite.ErrorIs(err, apperrors.ErrInvalidControlAccount)
				suite.ErrorIs(err, apperrors.ErrValidation)
				suite.Nil(plan)
				suite.planRepo.AssertNotCalled(suite.T(), "UpdatePlan", mock.Anything, mock.Anything)
				return
			}
			suite.Require().NoError(err)
			suite.Equal("pay", plan.PayableControlAccountID)
			suite.planRepo.AssertExpectations(suite.T())
		})
	}
}

func (suite *BillingPlanServiceTestSuite) TestCreatePlan_RequiresName() {
	svc := services.NewBillingPlanService(suite.planRepo, suite.accountRepo, services.DefaultLegacyControlLookup())

	plan, err := svc.CreatePlan(context.Background(), dto.CreateBillingPlanRequest{Name: "   "}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(plan)
	suite.planRepo.AssertNotCalled(suite.T(), "SavePlan", mock.Anything, mock.Anything)
}
