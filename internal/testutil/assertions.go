// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertNodeRan checks the debug log for an execution of the named node.
func AssertNodeRan(t *testing.T, result *HarnessResult, name string) {
	t.Helper()
	require.Positivef(t, CountNodeRuns(result, name), "expected node %q to have executed", name)
}

// CountNodeRuns counts how often the named node executed, going by the
// text-format debug log.
func CountNodeRuns(result *HarnessResult, name string) int {
	attr := " node=" + name + " "
	count := 0
	for _, line := range strings.Split(result.Output, "\n") {
		if strings.Contains(line, `msg="Executing node."`) && strings.Contains(line+" ", attr) {
			count++
		}
	}
	return count
}
