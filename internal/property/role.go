// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the semantic roles a property can play and the link
// legality derived from them.

package property

// Role is the semantic role of a property within its node.
type Role int

const (
	ScriptInput Role = iota + 1
	ScriptOutput
	BindingInput
	AnimationInput
	AnimationOutput
	Interface
)

func (r Role) String() string {
	switch r {
	case ScriptInput:
		return "script-input"
	case ScriptOutput:
		return "script-output"
	case BindingInput:
		return "binding-input"
	case AnimationInput:
		return "animation-input"
	case AnimationOutput:
		return "animation-output"
	case Interface:
		return "interface"
	}
	return "unknown"
}

// CanSource reports whether a property with this role may be the source of
// a link.
func (r Role) CanSource() bool {
	switch r {
	case ScriptOutput, AnimationOutput, Interface:
		return true
	}
	return false
}

// CanTarget reports whether a property with this role may be the target of
// a link.
func (r Role) CanTarget() bool {
	switch r {
	case ScriptInput, BindingInput, AnimationInput, Interface:
		return true
	}
	return false
}

// HostWritable reports whether the host may Set a property with this role.
// Outputs are written only by their node.
func (r Role) HostWritable() bool {
	return r.CanTarget()
}
