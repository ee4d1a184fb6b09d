// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"io"

	"github.com/specialistvlad/scenelogic/internal/registry"
	"github.com/specialistvlad/scenelogic/modules/console"
	"github.com/specialistvlad/scenelogic/modules/env_vars"
	"github.com/specialistvlad/scenelogic/modules/mathscripts"
)

// coreModules is the list of modules compiled into the scenelogic binary.
// Console objects print to outW.
func coreModules(outW io.Writer) []registry.Module {
	return []registry.Module{
		&console.Module{Out: outW},
		&env_vars.Module{},
		&mathscripts.Module{},
	}
}
