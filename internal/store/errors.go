package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registration fails because a
	// user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCapsuleNotFound is returned when a query or update targets a capsule
	// that does not exist, is soft-deleted, or belongs to a different user.
	ErrCapsuleNotFound = errors.New("capsule not found")

	// ErrMediaNotFound is returned when a media row lookup by id produces no
	// result.
	ErrMediaNotFound = errors.New("media not found")

	// ErrAlreadyShared is returned when a share insert violates the
	// one-share-per-(capsule, recipient) constraint.
	ErrAlreadyShared = errors.New("capsule already shared with this user")

	// ErrNothingToUpdate is returned when a partial update request carries no
	// field at all, so no SQL can be built for it.
	ErrNothingToUpdate = errors.New("no data to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// File storage errors returned by [FileStorage] implementations.
var (
	// ErrSavingFile is returned when writing an uploaded payload to the
	// upload directory fails.
	ErrSavingFile = errors.New("failed to save file")

	// ErrRemovingFile is returned when deleting a stored file fails for a
	// reason other than the file being absent.
	ErrRemovingFile = errors.New("failed to remove file")

	// ErrInvalidFilePath is returned for stored or relative paths that
	// escape the upload root or do not carry its prefix.
	ErrInvalidFilePath = errors.New("invalid file path")
)
