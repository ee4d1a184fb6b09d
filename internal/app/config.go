// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenePath string // .hcl file or directory
	SavePath  string // captured scene is written here after the run

	Frames        int
	FrameInterval time.Duration
	Dump          bool

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	PublishURL       string
	PublishNamespace string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	var result *multierror.Error
	if cfg.ScenePath == "" {
		result = multierror.Append(result, errors.New("ScenePath is a required configuration field and cannot be empty"))
	}
	if cfg.Frames < 1 {
		result = multierror.Append(result, errors.New("Frames must be at least 1"))
	}
	if cfg.FrameInterval < 0 {
		result = multierror.Append(result, errors.New("FrameInterval cannot be negative"))
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		result = multierror.Append(result, errors.New("HealthcheckPort must be between 0 and 65535"))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
