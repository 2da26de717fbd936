package services

import (
	"context"
	"log/slog"
	"sort"

	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/accountflow_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	TxManager portsrepo.TransactionManager
	Locker    portsrepo.Locker
}

// ServiceOption is a functional option for configuring the shared parts of a service
type ServiceOption func(*BaseService)

// WithTransactionManager runs service writes inside storage transactions.
func WithTransactionManager(tm portsrepo.TransactionManager) ServiceOption {
	return func(s *BaseService) {
		s.TxManager = tm
	}
}

// WithLocker serialises writers on sibling sets and titles.
func WithLocker(l portsrepo.Locker) ServiceOption {
	return func(s *BaseService) {
		s.Locker = l
	}
}

func newBaseService(opts ...ServiceOption) BaseService {
	b := BaseService{}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// WithinTx runs fn in a unit of work, or directly when no transaction manager is configured.
func (s *BaseService) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.TxManager == nil {
		return fn(ctx)
	}
	return s.TxManager.WithinTx(ctx, fn)
}

// RunLocked obtains every key, runs fn in a unit of work and releases the keys
// only after the unit of work has committed or rolled back. Keys are taken in
// sorted order so two callers locking the same pair cannot deadlock.
func (s *BaseService) RunLocked(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	if s.Locker == nil {
		return s.WithinTx(ctx, fn)
	}

	ordered := uniqueSorted(keys)
	held := make([]portsrepo.Lock, 0, len(ordered))
	defer func() {
		for i := len(held) - 1; i >= 0; i-- {
			if err := held[i].Release(ctx); err != nil {
				s.LogError(ctx, err, "Failed to release lock", slog.String("lock_key", ordered[i]))
			}
		}
	}()

	for _, key := range ordered {
		lk, err := s.Locker.Obtain(ctx, key)
		if err != nil {
			s.LogWarn(ctx, "Could not obtain lock", slog.String("lock_key", key), slog.String("error", err.Error()))
			return err
		}
		held = append(held, lk)
	}

	return s.WithinTx(ctx, fn)
}

func uniqueSorted(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lock keys shared by the services.
func siblingLockKey(planID, parentAccountID string) string {
	if parentAccountID == "" {
		return "account-siblings:" + planID + ":root"
	}
	return "account-siblings:" + planID + ":" + parentAccountID
}

func accountLockKey(accountID string) string { return "account:" + accountID }

func planLockKey(planID string) string { return "plan:" + planID }

func presetLockKey(presetID string) string { return "preset:" + presetID }

func titleLockKey(titleID string) string { return "title:" + titleID }
