package repositories

import (
	"context"
)

// TransactionManager runs work inside a single storage transaction.
type TransactionManager interface {
	// WithinTx runs fn inside a transaction carried by the context passed to fn.
	// Repositories called with that context join the transaction. A nested call
	// runs inside the outer transaction as a savepoint: when it fails only its own
	// writes are undone and the outer transaction stays usable. The outermost call
	// commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
