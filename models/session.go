// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProvisioningOutcome is the terminal result of resolving the caller's
// storage resource.
type ProvisioningOutcome string

const (
	ProvisioningUnknown       ProvisioningOutcome = ""
	ProvisioningPending       ProvisioningOutcome = "pending"
	ProvisioningResolved      ProvisioningOutcome = "resolved"
	ProvisioningUnprovisioned ProvisioningOutcome = "unprovisioned"
	ProvisioningFailed        ProvisioningOutcome = "failed"
	ProvisioningRejected      ProvisioningOutcome = "rejected"
)

// ProvisioningResult is what a session knows about its storage resource.
// GaveUp distinguishes running out of attempts from an explicit failure.
type ProvisioningResult struct {
	Outcome  ProvisioningOutcome
	Resource ResourceHandle
	Reason   string
	GaveUp   bool
	Attempts int
}

// SessionStatus summarises who the session belongs to.
type SessionStatus string

const (
	SessionLoggedOut    SessionStatus = "logged_out"
	SessionUnregistered SessionStatus = "unregistered"
	SessionRegistered   SessionStatus = "registered"
)

// SessionState is an immutable snapshot of the client session. Every change
// produces a new value with a higher Version.
type SessionState struct {
	Version       uint64
	Status        SessionStatus
	Principal     Principal
	User          *PublicUser
	Provisioning  ProvisioningResult
	KeyRegistered bool
}

// Resource returns the resolved resource handle, if any.
func (s SessionState) Resource() (ResourceHandle, bool) {
	if s.Provisioning.Outcome != ProvisioningResolved || s.Provisioning.Resource == "" {
		return "", false
	}
	return s.Provisioning.Resource, true
}

// KeyPair is the caller's X25519 key pair used to unwrap file keys.
type KeyPair struct {
	Public  []byte
	Private []byte
}
