package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFileName      = errors.New("file name is required")
	ErrInvalidFileName    = errors.New("file name must not contain path separators")
	ErrInvalidNumChunks   = errors.New("num_chunks must be positive")
	ErrEmptyOwnerKey      = errors.New("owner key is required")
	ErrEmptyGrants        = errors.New("share grants list cannot be empty")
	ErrEmptyRecipients    = errors.New("recipients list cannot be empty")
	ErrAnonymousRecipient = errors.New("recipient must be a principal")
	ErrEmptyWrappedKey    = errors.New("wrapped key is required")
	ErrDuplicateRecipient = errors.New("recipient listed twice")
)
