package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when a user with the same login
	// already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrItemAlreadyExists is returned when an item with the same name
	// already exists.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrUserNotFound is returned when no user matches the lookup, or when a
	// write references a user that does not exist.
	ErrUserNotFound = errors.New("no user was found")

	// ErrItemNotFound is returned when no item matches the lookup.
	ErrItemNotFound = errors.New("no item was found")

	// ErrTransferAlreadyRedeemed is returned by single-use redemption when
	// the capability id is already in the ledger.
	ErrTransferAlreadyRedeemed = errors.New("transfer was already redeemed")

	// ErrUnsupportedDSN is returned when the DSN matches no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
