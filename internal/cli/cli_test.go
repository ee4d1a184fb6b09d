// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/specialistvlad/scenelogic/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		want       *app.Config
		shouldExit bool
		errCode    int
		errMsg     string
	}{
		{
			name: "positional path with defaults",
			args: []string{"scene.hcl"},
			want: &app.Config{ScenePath: "scene.hcl", Frames: 1, LogFormat: "text", LogLevel: "info", PublishNamespace: "/"},
		},
		{
			name: "every flag",
			args: []string{
				"-scene", "a.hcl", "-frames", "10", "-frame-interval", "16ms", "-dump",
				"-save", "out.hcl", "-publish-url", "http://localhost:3000", "-publish-namespace", "/scene",
				"-healthcheck-port", "8080", "-log-format", "JSON", "-log-level", "DEBUG",
			},
			want: &app.Config{
				ScenePath: "a.hcl", SavePath: "out.hcl", Frames: 10, FrameInterval: 16 * time.Millisecond,
				Dump: true, LogFormat: "json", LogLevel: "debug", HealthcheckPort: 8080,
				PublishURL: "http://localhost:3000", PublishNamespace: "/scene",
			},
		},
		{
			name: "-scene wins over -s and positional",
			args: []string{"-scene", "a.hcl", "-s", "b.hcl", "c.hcl"},
			want: &app.Config{ScenePath: "a.hcl", Frames: 1, LogFormat: "text", LogLevel: "info", PublishNamespace: "/"},
		},
		{
			name: "shorthand",
			args: []string{"-s", "b.hcl"},
			want: &app.Config{ScenePath: "b.hcl", Frames: 1, LogFormat: "text", LogLevel: "info", PublishNamespace: "/"},
		},
		{name: "no path prints usage", args: nil, shouldExit: true},
		{name: "help", args: []string{"-h"}, shouldExit: true},
		{name: "unknown flag", args: []string{"-nope"}, errCode: 2, errMsg: "flag provided but not defined"},
		{name: "bad log format", args: []string{"-log-format", "xml", "a.hcl"}, errCode: 2, errMsg: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud", "a.hcl"}, errCode: 2, errMsg: "invalid log-level"},
		{name: "zero frames", args: []string{"-frames", "0", "a.hcl"}, errCode: 2, errMsg: "Frames must be at least 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)

			if tc.errCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.errCode, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shouldExit, shouldExit)
			if tc.shouldExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.want, cfg)
		})
	}
}
