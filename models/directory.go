package models

import "time"

// MaxUsernameSize is the maximum length of a username in bytes.
const MaxUsernameSize = 255

// User is a directory user: a principal that picked a username.
type User struct {
	Principal Principal `json:"principal"`
	Username  string    `json:"username"`
	PublicKey []byte    `json:"public_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) TableName() string {
	return "users"
}

// Public strips the user down to what other users may see.
func (u User) Public() PublicUser {
	return PublicUser{Principal: u.Principal, Username: u.Username, PublicKey: u.PublicKey}
}

// PublicUser is the view of a user shown to other users.
type PublicUser struct {
	Principal Principal `json:"principal"`
	Username  string    `json:"username"`
	PublicKey []byte    `json:"public_key,omitempty"`
}

// RegisterRequest is the body of a register call.
type RegisterRequest struct {
	Username string `json:"username"`
}

// UsersQuery selects a page of directory users.
type UsersQuery struct {
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
	Query  string `json:"query,omitempty"`
}

// UsersPage is one page of directory users.
type UsersPage struct {
	Users      []PublicUser `json:"users"`
	Total      int          `json:"total"`
	NextOffset int          `json:"next_offset"`
}

// FileSummary is the directory's view of a single shared file.
type FileSummary struct {
	FileID     FileID       `json:"file_id"`
	FileName   string       `json:"file_name"`
	SharedWith []PublicUser `json:"shared_with"`
}

// SharedResource groups the files shared with the caller by owning resource.
type SharedResource struct {
	Resource ResourceHandle `json:"resource"`
	Owner    PublicUser     `json:"owner"`
	Files    []FileSummary  `json:"files"`
}

// ShareIndexEntry is one row of the directory's share index.
type ShareIndexEntry struct {
	Resource  ResourceHandle `json:"resource"`
	Owner     Principal      `json:"owner"`
	FileID    FileID         `json:"file_id"`
	FileName  string         `json:"file_name"`
	Recipient Principal      `json:"recipient"`
}
