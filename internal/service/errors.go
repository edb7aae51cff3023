package service

import "errors"

// Server-side errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNotResourceOwner is returned when a caller tries an owner-only
	// operation on someone else's resource.
	ErrNotResourceOwner = errors.New("caller is not the resource owner")
	// ErrResourceUnavailable is returned for a resource that is unknown or
	// not provisioned yet.
	ErrResourceUnavailable = errors.New("resource is not available")

	ErrChunkTooLarge = errors.New("chunk exceeds the size limit")
	ErrEmptyChunk    = errors.New("chunk is empty")
)

// Client-side errors. Every one of them belongs to an [ErrorKind], see
// [KindOf].
var (
	// ErrTransient wraps failures worth retrying: network errors, 5xx
	// answers and resources still being created.
	ErrTransient = errors.New("temporary failure, try again")

	ErrUnauthorized     = errors.New("not allowed to do this")
	ErrPermissionDenied = errors.New("permission denied")
	ErrWrongCredentials = errors.New("wrong login or password")

	ErrChunkOutOfBounds     = errors.New("chunk index is out of bounds")
	ErrAlreadyUploaded      = errors.New("file is already uploaded")
	ErrChunkAlreadyUploaded = errors.New("chunk is already uploaded")
	ErrNotClaimed           = errors.New("requested upload was not claimed")
	ErrNotRequested         = errors.New("no upload was requested under this alias")
	ErrFileAlreadyExists    = errors.New("a file with this name already exists")
	ErrFileNotUploaded      = errors.New("file is not fully uploaded yet")
	ErrFilePending          = errors.New("file is waiting for its requested upload")
	ErrShareInconsistent    = errors.New("share listing and access list disagree, file is not accessible")

	ErrKeyUnavailable   = errors.New("file key cannot be unwrapped on this device")
	ErrDecryptionFailed = errors.New("file content cannot be decrypted")

	ErrAnonymousCaller    = errors.New("not logged in")
	ErrUserNotRegistered  = errors.New("no username registered for this account")
	ErrResourceUnresolved = errors.New("storage resource is not resolved")

	// ErrResourceCreationFailed is a definitive storage creation failure
	// reported by the directory. Registering again does not help.
	ErrResourceCreationFailed = errors.New("storage creation failed")

	ErrFileTooLarge      = errors.New("file exceeds the size limit")
	ErrUsernameTooLong   = errors.New("username is too long")
	ErrUsernameTaken     = errors.New("username is taken")
	ErrAlreadyRegistered = errors.New("account already has a username")
	ErrInvalidQuery      = errors.New("invalid user query")
	ErrLoginTaken        = errors.New("login is already taken")

	ErrFileNotFound    = errors.New("file not found")
	ErrNoSuchRecipient = errors.New("no such recipient")
	ErrAliasNotFound   = errors.New("upload alias not found")

	// ErrShareRevocationFailed is returned by Delete when the directory could
	// not drop the file's shares; the file is kept.
	ErrShareRevocationFailed = errors.New("failed to revoke shares of the file")

	ErrUnknownResponse = errors.New("unknown response from server")
	ErrNoPassphrase    = errors.New("passphrase is required to unlock the key pair")
)
