// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"context"
	"io"
)

// Loader is the interface for a format-specific scene loader.
type Loader interface {
	// Load reads every scene file under the given paths and merges them
	// into one Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Saver is the interface for a format-specific scene writer.
type Saver interface {
	Save(ctx context.Context, w io.Writer, m *Model) error
}
