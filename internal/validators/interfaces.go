// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks storage requests before they reach the
// repositories.
//
// A Validator is injected into the storage service, which reports every
// failure as invalid input. Field names restrict a check to part of a
// model, e.g. only the owner key of an upload whose name is assigned by the
// server.
package validators

import "context"

// Validator validates a model, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
