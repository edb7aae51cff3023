package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when signing up with a login that is
	// already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrAccountNotFound is returned when no account matches the login.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrUsernameTaken is returned when the case-folded username already
	// belongs to another user.
	ErrUsernameTaken = errors.New("username is taken")

	// ErrAlreadyRegistered is returned when the principal already picked a
	// username.
	ErrAlreadyRegistered = errors.New("principal is already registered")

	ErrUserNotFound     = errors.New("user was not found")
	ErrResourceNotFound = errors.New("resource was not found")

	// ErrResourceExists is returned when a creation is requested for an owner
	// that already has a resource row in any state.
	ErrResourceExists = errors.New("resource already exists")

	ErrFileNotFound         = errors.New("file was not found")
	ErrFileAlreadyExists    = errors.New("file with this name already exists")
	ErrNotRequested         = errors.New("file was not requested")
	ErrAlreadyUploaded      = errors.New("file is already uploaded")
	ErrChunkAlreadyUploaded = errors.New("chunk is already uploaded")
	ErrChunkOutOfBounds     = errors.New("chunk id is out of bounds")

	// ErrNotClaimed is returned when a chunk targets a requested file whose
	// alias has not been claimed yet.
	ErrNotClaimed = errors.New("file is not claimed")

	ErrShareNotFound = errors.New("share was not found")
	ErrChunkNotFound = errors.New("chunk was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrBlobStore            = errors.New("blob store error")
)
