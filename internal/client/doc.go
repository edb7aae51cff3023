// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the commands of the vault client.
//
// Each exported method of [App] backs one CLI command: it restores the saved
// session, resolves the caller's storage resource when the command needs it,
// and drives the client services. Output goes to the writers given to
// [NewApp] so that commands can be tested without a terminal.
package client
