// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/scenelogic/internal/config"
	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL scene loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file under paths and merges their blocks into one
// model in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.Collect(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl scene files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "files", files)

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.decode(ctx, hclFile.Body, model); err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
		}
	}

	logger.Debug("HCL loading complete.", "dataarrays", len(model.DataArrays), "nodes", len(model.Nodes), "links", len(model.Links))
	return model, nil
}

// LoadBytes parses a single in-memory scene. filename is only used in
// diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL %s: %w", filename, diags)
	}
	model := &config.Model{}
	if err := l.decode(ctx, hclFile.Body, model); err != nil {
		return nil, fmt.Errorf("failed to decode HCL %s: %w", filename, err)
	}
	return model, nil
}

func (l *Loader) decode(ctx context.Context, body hcl.Body, model *config.Model) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return diags
	}

	for _, da := range root.DataArrays {
		model.DataArrays = append(model.DataArrays, translateDataArray(da))
	}
	for _, nb := range root.Nodes {
		n, err := translateNode(ctx, nb)
		if err != nil {
			return err
		}
		model.Nodes = append(model.Nodes, n)
	}
	for _, lb := range root.Links {
		model.Links = append(model.Links, &config.Link{From: lb.From, To: lb.To, Weak: lb.Weak})
	}
	return nil
}
