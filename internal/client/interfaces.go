// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Browser is the interactive file browser started by the browse command.
type Browser interface {
	// Browse runs the browser and blocks until the user leaves it.
	Browse(ctx context.Context) error
}
