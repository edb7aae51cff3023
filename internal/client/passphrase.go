// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-file-vault/internal/service"
)

// PasswordEnv names the variable that supplies the account password
// without a prompt.
const PasswordEnv = "VAULT_PASSWORD"

// PromptFunc asks the user for a secret.
type PromptFunc func(ctx context.Context, title string) (string, error)

// PassphraseSource returns the password from PasswordEnv, or asks for it
// when the session is interactive. lookup is usually os.LookupEnv.
func PassphraseSource(lookup func(string) (string, bool), interactive bool, prompt PromptFunc) service.PassphraseFunc {
	return func(ctx context.Context) (string, error) {
		if v, ok := lookup(PasswordEnv); ok && v != "" {
			return v, nil
		}
		if !interactive || prompt == nil {
			return "", service.ErrNoPassphrase
		}
		return prompt(ctx, "Vault password")
	}
}
