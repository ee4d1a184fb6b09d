// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// This file translates the decoded HCL blocks into the format-agnostic
// model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/scenelogic/internal/config"
	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/value"
	"github.com/zclconf/go-cty/cty"
)

func translateDataArray(b *dataArrayBlock) *config.DataArray {
	data := make([]float32, len(b.Data))
	for i, f := range b.Data {
		data[i] = float32(f)
	}
	return &config.DataArray{Name: b.Name, Data: data}
}

// translateNode converts a node block into the agnostic model.
func translateNode(ctx context.Context, b *nodeBlock) (*config.Node, error) {
	logger := ctxlog.FromContext(ctx)
	n := &config.Node{
		Kind:       b.Kind,
		Name:       b.Name,
		Script:     b.Script,
		Object:     b.Object,
		Expression: b.Expression,
	}

	if !isMissing(b.Output) {
		keyword := hcl.ExprAsKeyword(b.Output)
		k, ok := value.ParseKind(keyword)
		if !ok {
			return nil, fmt.Errorf("node %q: output must be a primitive kind keyword, got %q", b.Name, keyword)
		}
		n.Output = k
	}

	for _, in := range b.Inputs {
		t, err := typeExprToType(ctx, in.Name, in.Type)
		if err != nil {
			return nil, fmt.Errorf("node %q, input %q: %w", b.Name, in.Name, err)
		}
		n.Inputs = append(n.Inputs, t)
	}

	for _, ch := range b.Channels {
		n.Channels = append(n.Channels, &config.Channel{
			Name:       ch.Name,
			Timestamps: ch.Timestamps,
			Keyframes:  ch.Keyframes,
			Easing:     ch.Easing,
		})
	}

	values, err := decodeValues(b.Values)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", b.Name, err)
	}
	n.Values = values

	logger.Debug("Translated node block.", "node", n.Name, "kind", n.Kind, "inputs", len(n.Inputs), "values", len(n.Values))
	return n, nil
}

// isMissing reports whether an optional expression attribute was omitted.
// gohcl fills omitted hcl.Expression fields with a static null.
func isMissing(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	v, diags := expr.Value(nil)
	return !diags.HasErrors() && v.IsNull()
}

// decodeValues evaluates a `values = { ... }` attribute. Values must be
// literals; no variables or functions are available.
func decodeValues(expr hcl.Expression) (map[string]cty.Value, error) {
	if isMissing(expr) {
		return nil, nil
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid values: %w", diags)
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return nil, fmt.Errorf("values must be an object, got %s", v.Type().FriendlyName())
	}
	if v.LengthInt() == 0 {
		return nil, nil
	}
	return v.AsValueMap(), nil
}
