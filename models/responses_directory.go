package models

// Directory responses are closed unions: Kind selects the variant and only
// the fields belonging to that variant are set.

type ResolveResourceKind string

const (
	ResolveOK              ResolveResourceKind = "ok"
	ResolveCreationPending ResolveResourceKind = "creation_pending"
	ResolveCreationFailed  ResolveResourceKind = "creation_failed"
	ResolveUninitialized   ResolveResourceKind = "uninitialized"
	ResolveAnonymousCaller ResolveResourceKind = "anonymous_caller"
)

// ResolveResourceResponse answers "where is my storage resource".
type ResolveResourceResponse struct {
	Kind     ResolveResourceKind `json:"kind"`
	Resource ResourceHandle      `json:"resource,omitempty"`
	Reason   string              `json:"reason,omitempty"`
}

type RetryCreationKind string

const (
	RetryCreated         RetryCreationKind = "created"
	RetryOK              RetryCreationKind = "ok"
	RetryCreationPending RetryCreationKind = "creation_pending"
	RetryUserNotFound    RetryCreationKind = "user_not_found"
	RetryAnonymousCaller RetryCreationKind = "anonymous_caller"
)

// RetryCreationResponse answers a request to restart resource creation.
// RetryOK means creation was restarted; RetryCreated carries the handle.
type RetryCreationResponse struct {
	Kind     RetryCreationKind `json:"kind"`
	Resource ResourceHandle    `json:"resource,omitempty"`
}

type SharedFilesKind string

const (
	SharedFilesOK            SharedFilesKind = "shared_files"
	SharedFilesNoSuchUser    SharedFilesKind = "no_such_user"
	SharedFilesAnonymousUser SharedFilesKind = "anonymous_user"
)

type SharedFilesResponse struct {
	Kind      SharedFilesKind  `json:"kind"`
	Resources []SharedResource `json:"resources,omitempty"`
}

type RegisterKind string

const (
	RegisterOK                RegisterKind = "ok"
	RegisterUsernameExists    RegisterKind = "username_exists"
	RegisterAlreadyRegistered RegisterKind = "already_registered"
	RegisterAnonymousCaller   RegisterKind = "anonymous_caller"
	RegisterUsernameTooLong   RegisterKind = "username_too_long"
)

type RegisterResponse struct {
	Kind RegisterKind `json:"kind"`
}

type WhoAmIKind string

const (
	WhoAmIKnownUser   WhoAmIKind = "known_user"
	WhoAmIUnknownUser WhoAmIKind = "unknown_user"
)

type WhoAmIResponse struct {
	Kind WhoAmIKind  `json:"kind"`
	User *PublicUser `json:"user,omitempty"`
}

type GetUsersKind string

const (
	GetUsersOK              GetUsersKind = "users"
	GetUsersPermissionError GetUsersKind = "permission_error"
	GetUsersInvalidQuery    GetUsersKind = "invalid_query"
)

type GetUsersResponse struct {
	Kind GetUsersKind `json:"kind"`
	Page *UsersPage   `json:"page,omitempty"`
}
