package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure in an underlying dependency.
var ErrInternal = errors.New("internal error")

// Structural violations of the chart of accounts. Never retryable.
var (
	ErrMaxDepthExceeded   = fmt.Errorf("%w: maximum account depth exceeded", ErrValidation)
	ErrInvalidParent      = fmt.Errorf("%w: invalid parent account", ErrValidation)
	ErrPlanMismatch       = fmt.Errorf("%w: accounts belong to different plans", ErrValidation)
	ErrNonAnalyticAccount = fmt.Errorf("%w: account is not analytic", ErrValidation)
	ErrAccountHasChildren = fmt.Errorf("%w: account has child accounts", ErrConflict)
	ErrAccountInUse       = fmt.Errorf("%w: account is referenced by ledger records", ErrConflict)
)

// ErrInvalidControlAccount is returned when a plan's control account is missing,
// not analytic, or belongs to another plan.
var ErrInvalidControlAccount = fmt.Errorf("%w: invalid control account", ErrValidation)

// ErrUnboundPreset is returned when a preset references no account, so no plan can be derived from it.
var ErrUnboundPreset = fmt.Errorf("%w: preset has no bound accounts", ErrValidation)

// ErrFinancialInvariant is the parent of every error raised to protect a title's settled total.
var ErrFinancialInvariant = errors.New("financial invariant violated")

// ErrImmutableAfterSettlement is returned when a title's amount is changed after an entry was recorded.
var ErrImmutableAfterSettlement = fmt.Errorf("%w: title amount cannot change once settlements exist", ErrFinancialInvariant)

// ErrOverpayment is matched by every *OverpaymentError.
var ErrOverpayment = fmt.Errorf("%w: settlement exceeds title amount", ErrFinancialInvariant)

// ErrBelowSettledTotal is matched by every *BelowSettledTotalError.
var ErrBelowSettledTotal = fmt.Errorf("%w: title amount below settled total", ErrFinancialInvariant)

// ErrUnbalancedPosting is returned when a journal's debits and credits differ or are not positive.
var ErrUnbalancedPosting = fmt.Errorf("%w: unbalanced posting", ErrValidation)

// ErrConcurrentModification is returned when a competing writer holds the resource. Callers may retry.
var ErrConcurrentModification = fmt.Errorf("%w: concurrent modification, retry the request", ErrConflict)

// OverpaymentError reports how much can still be settled against a title.
type OverpaymentError struct {
	Remaining decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("%s: remaining payable amount is %s", ErrOverpayment.Error(), e.Remaining.StringFixed(2))
}

func (e *OverpaymentError) Unwrap() error { return ErrOverpayment }

// NewOverpaymentError builds an OverpaymentError, clamping the remaining amount at zero.
func NewOverpaymentError(remaining decimal.Decimal) *OverpaymentError {
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return &OverpaymentError{Remaining: remaining.Round(2)}
}

// BelowSettledTotalError reports the settled total a title amount cannot go under.
type BelowSettledTotalError struct {
	Settled decimal.Decimal
}

func (e *BelowSettledTotalError) Error() string {
	return fmt.Sprintf("%s: settled total is %s", ErrBelowSettledTotal.Error(), e.Settled.StringFixed(2))
}

func (e *BelowSettledTotalError) Unwrap() error { return ErrBelowSettledTotal }

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates an AppError. A nil err is replaced by ErrInternal so the
// result still matches errors.Is(err, ErrInternal).
func NewAppError(code int, message string, err error) *AppError {
	if err == nil {
		err = ErrInternal
	}
	return &AppError{Code: code, Message: message, Err: err}
}
