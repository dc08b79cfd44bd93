package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction
// so the use case layer never touches the driver directly.
type TransactionManager interface {
	// Execute runs fn within a transaction. A non-nil error from fn rolls
	// the transaction back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	ProfileRepo() ProfileRepository
	AuthRepo() AuthRepository
	CardRepo() CardRepository
	ClickRepo() ClickRepository
}
