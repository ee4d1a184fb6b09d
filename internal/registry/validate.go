// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/specialistvlad/scenelogic/internal/ctxlog"
)

// ValidateRegistry builds every registered script once and checks that it
// has a function and well-formed property types.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var result *multierror.Error

	for _, name := range r.Scripts() {
		s := r.scripts[name]()
		if s.Run == nil {
			result = multierror.Append(result, fmt.Errorf("script '%s': no function", name))
			continue
		}
		if err := s.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("script '%s': %w", name, err))
			continue
		}
		if len(s.Outputs.Fields) == 0 {
			logger.Warn("Script declares no outputs; nothing can link from it.", "script", name)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("registry validation failed: %w", err)
	}
	logger.Debug("Registry validated.", "scripts", len(r.scripts), "objects", len(r.objects))
	return nil
}
