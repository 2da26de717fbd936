package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/accountflow_ledger/internal/core/ports/services"
	"github.com/SscSPs/accountflow_ledger/internal/core/services"
	"github.com/SscSPs/accountflow_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	planRepo    *MockBillingPlanRepository
	service     portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.planRepo = new(MockBillingPlanRepository)
	suite.service = services.NewAccountService(suite.accountRepo, suite.planRepo)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func strPtr(s string) *string { return &s }

func (suite *AccountServiceTestSuite) expectPlan(planID string) {
	suite.planRepo.On("FindPlanByID", mock.Anything, planID).
		Return(&domain.BillingPlan{PlanID: planID, Name: "Main"}, nil).Once()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_FirstRoot() {
	ctx := context.Background()
	suite.expectPlan("plan-1")
	suite.accountRepo.On("LockSiblingSet", mock.Anything, "plan-1", "").Return(nil).Once()
	suite.accountRepo.On("ListSiblingCodes", mock.Anything, "plan-1", "").Return([]string{}, nil).Once()
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	acc, err := suite.service.CreateAccount(ctx, "plan-1", dto.CreateAccountRequest{Name: " Assets ", Kind: domain.Synthetic}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("1", acc.Code)
	suite.Equal(1, acc.Level)
	suite.Equal("Assets", acc.Name)
	suite.Empty(acc.ParentAccountID)
	suite.True(acc.IsActive)
	suite.Equal("user-1", acc.CreatedBy)
	suite.WithinDuration(time.Now(), acc.CreatedAt, time.Second)
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ChildCodes() {
	tests := []struct {
		name     string
		parent   domain.Account
		siblings []string
		want     string
	}{
		{"first child of root", domain.Account{Code: "1", Level: 1}, nil, "1.1"},
		{"third child at level 3", domain.Account{Code: "1.1", Level: 2}, []string{"1.1.1", "1.1.2"}, "1.1.3"},
		{"padded level 4", domain.Account{Code: "1.1.1", Level: 3}, []string{"1.1.1.001"}, "1.1.1.002"},
		{"skips a taken code after delete", domain.Account{Code: "2", Level: 1}, []string{"2.2"}, "2.3"},
		{"gap at the end", domain.Account{Code: "2", Level: 1}, []string{"2.1", "2.2"}, "2.3"},
		{"advances past taken count+1", domain.Account{Code: "3", Level: 1}, []string{"3.2", "3.3"}, "3.4"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			parent := tc.parent
			parent.AccountID = "parent"
			parent.PlanID = "plan-1"
			parent.Kind = domain.Synthetic

			suite.expectPlan("plan-1")
			suite.accountRepo.On("FindAccountByID", mock.Anything, "parent").Return(&parent, nil).Once()
			suite.accountRepo.On("LockSiblingSet", mock.Anything, "plan-1", "parent").Return(nil).Once()
			suite.accountRepo.On("ListSiblingCodes", mock.Anything, "plan-1", "parent").Return(tc.siblings, nil).Once()
			suite.accountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(nil).Once()

			acc, err := suite.service.CreateAccount(context.Background(), "plan-1", dto.CreateAccountRequest{
				Name:            "Child",
				Kind:            domain.Analytic,
				ParentAccountID: strPtr("parent"),
			}, "user-1")

			suite.Require().NoError(err)
			suite.Equal(tc.want, acc.Code)
			suite.Equal(parent.Level+1, acc.Level)
			suite.Equal("parent", acc.ParentAccountID)
		})
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_AnalyticWithoutParent() {
	acc, err := suite.service.CreateAccount(context.Background(), "plan-1", dto.CreateAccountRequest{Name: "Cash", Kind: domain.Analytic}, "user-1")

	suite.Nil(acc)
	suite.ErrorIs(err, apperrors.ErrInvalidParent)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.planRepo.AssertNotCalled(suite.T(), "FindPlanByID", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MaxDepthExceeded() {
	parent := &domain.Account{AccountID: "deep", PlanID: "plan-1", Kind: domain.Synthetic, Code: "1.1.1.001.001", Level: domain.MaxAccountLevel}
	suite.expectPlan("plan-1")
	suite.accountRepo.On("FindAccountByID", mock.Anything, "deep").Return(parent, nil).Once()

	acc, err := suite.service.CreateAccount(context.Background(), "plan-1", dto.CreateAccountRequest{
		Name: "Too deep", Kind: domain.Analytic, ParentAccountID: strPtr("deep"),
	}, "user-1")

	suite.Nil(acc)
	suite.ErrorIs(err, apperrors.ErrMaxDepthExceeded)
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentRules() {
	suite.Run("analytic parent", func() {
		suite.SetupTest()
		suite.expectPlan("plan-1")
		suite.accountRepo.On("FindAccountByID", mock.Anything, "leaf").
			Return(&domain.Account{AccountID: "leaf", PlanID: "plan-1", Kind: domain.Analytic, Level: 2}, nil).Once()

		_, err := suite.service.CreateAccount(context.Background(), "plan-1", dto.CreateAccountRequest{
			Name: "Sub", Kind: domain.Analytic, ParentAccountID: strPtr("leaf"),
		}, "user-1")
		suite.ErrorIs(err, apperrors.ErrInvalidParent)
	})

	suite.Run("parent in another plan", func() {
		suite.SetupTest()
		suite.expectPlan("plan-1")
		suite.accountRepo.On("FindAccountByID", mock.Anything, "foreign").
			Return(&domain.Account{AccountID: "foreign", PlanID: "plan-2", Kind: domain.Synthetic, Level: 1}, nil).Once()

		_, err := suite.service.CreateAccount(context.Background(), "plan-1", dto.CreateAccountRequest{
			Name: "Sub", Kind: domain.Synthetic, ParentAccountID: strPtr("foreign"),
		}, "user-1")
		suite.ErrorIs(err, apperrors.ErrPlanMismatch)
	})

	suite.Run("missing parent", func() {
		suite.SetupTest()
		suite.expectPlan("plan-1")
		suite.accountRepo.On("FindAccountByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

		_, err := suite.service.CreateAccount(context.Background(), "plan-1", dto.CreateAccountRequest{
			Name: "Sub", Kind: domain.Synthetic, ParentAccountID: strPtr("ghost"),
		}, "user-1")
		suite.ErrorIs(err, apperrors.ErrInvalidParent)
	})
}

func (suite *AccountServiceTestSuite) TestCreateAccount_PlanNotFound() {
	suite.planRepo.On("FindPlanByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(context.Background(), "nope", dto.CreateAccountRequest{Name: "Assets", Kind: domain.Synthetic}, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CodeTakenConcurrently() {
	suite.expectPlan("plan-1")
	suite.accountRepo.On("LockSiblingSet", mock.Anything, "plan-1", "").Return(nil).Once()
	suite.accountRepo.On("ListSiblingCodes", mock.Anything, "plan-1", "").Return([]string{"1"}, nil).Once()
	suite.accountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(context.Background(), "plan-1", dto.CreateAccountRequest{Name: "Liabilities", Kind: domain.Synthetic}, "user-1")

	suite.ErrorIs(err, apperrors.ErrConcurrentModification)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount() {
	account := &domain.Account{AccountID: "acc-1", PlanID: "plan-1", Kind: domain.Analytic, Code: "1.1", Level: 2}

	suite.Run("with children", func() {
		suite.SetupTest()
		suite.accountRepo.On("FindAccountByID", mock.Anything, "acc-1").Return(account, nil).Once()
		suite.accountRepo.On("CountChildren", mock.Anything, "acc-1").Return(2, nil).Once()

		err := suite.service.DeleteAccount(context.Background(), "acc-1", "user-1")

		suite.ErrorIs(err, apperrors.ErrAccountHasChildren)
		suite.ErrorIs(err, apperrors.ErrConflict)
		suite.accountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
	})

	suite.Run("referenced", func() {
		suite.SetupTest()
		suite.accountRepo.On("FindAccountByID", mock.Anything, "acc-1").Return(account, nil).Once()
		suite.accountRepo.On("CountChildren", mock.Anything, "acc-1").Return(0, nil).Once()
		suite.accountRepo.On("CountAccountReferences", mock.Anything, "acc-1").Return(3, nil).Once()

		err := suite.service.DeleteAccount(context.Background(), "acc-1", "user-1")

		suite.ErrorIs(err, apperrors.ErrAccountInUse)
		suite.accountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
	})

	suite.Run("free", func() {
		suite.SetupTest()
		suite.accountRepo.On("FindAccountByID", mock.Anything, "acc-1").Return(account, nil).Once()
		suite.accountRepo.On("CountChildren", mock.Anything, "acc-1").Return(0, nil).Once()
		suite.accountRepo.On("CountAccountReferences", mock.Anything, "acc-1").Return(0, nil).Once()
		suite.accountRepo.On("DeleteAccount", mock.Anything, "acc-1").Return(nil).Once()

		suite.NoError(suite.service.DeleteAccount(context.Background(), "acc-1", "user-1"))
		suite.accountRepo.AssertExpectations(suite.T())
	})

	suite.Run("storage failure", func() {
		suite.SetupTest()
		dbErr := errors.New("connection reset")
		suite.accountRepo.On("FindAccountByID", mock.Anything, "acc-1").Return(account, nil).Once()
		suite.accountRepo.On("CountChildren", mock.Anything, "acc-1").Return(0, dbErr).Once()

		err := suite.service.DeleteAccount(context.Background(), "acc-1", "user-1")
		suite.ErrorIs(err, dbErr)
	})
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	suite.accountRepo.On("FindAccountByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	acc, err := suite.service.GetAccountByID(context.Background(), "missing")

	suite.Nil(acc)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}
