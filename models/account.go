// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Principal is the opaque identity of a caller as issued by the identity
// service. The zero value is the anonymous caller.
type Principal string

// Anonymous is the principal of a caller that presented no credentials.
const Anonymous Principal = ""

// IsAnonymous reports whether p identifies an unauthenticated caller.
func (p Principal) IsAnonymous() bool {
	return p == Anonymous
}

func (p Principal) String() string {
	return string(p)
}

// Account is a login entity of the identity service.
// Password carries the plaintext on the way in and the derived hash
// once it has been persisted; it is never serialized back to clients.
type Account struct {
	Principal Principal `json:"principal,omitempty"`
	Login     string    `json:"login"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
