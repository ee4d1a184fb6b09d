// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// This file parses HCL type expressions (e.g., `float`,
// `struct({ r = float })`, `array(vec3f, 4)`) into property types.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// typeExprToType converts an HCL type expression into a property type
// named name.
func typeExprToType(ctx context.Context, name string, expr hcl.Expression) (property.Type, error) {
	logger := ctxlog.FromContext(ctx)

	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return property.Type{}, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		keyword := v.Traversal.RootName()
		k, ok := value.ParseKind(keyword)
		if !ok {
			return property.Type{}, fmt.Errorf("unknown primitive type %q", keyword)
		}
		return property.Prim(name, k), nil

	case *hclsyntax.FunctionCallExpr:
		logger.Debug("Parsing type expression as a constructor.", "call", v.Name)
		switch v.Name {
		case "struct":
			return structType(ctx, name, v)
		case "array":
			return arrayType(ctx, name, v)
		default:
			return property.Type{}, fmt.Errorf("unknown type constructor function %q", v.Name)
		}

	default:
		return property.Type{}, fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}

func structType(ctx context.Context, name string, call *hclsyntax.FunctionCallExpr) (property.Type, error) {
	if len(call.Args) != 1 {
		return property.Type{}, fmt.Errorf("struct() requires exactly one object argument, got %d", len(call.Args))
	}
	obj, ok := call.Args[0].(*hclsyntax.ObjectConsExpr)
	if !ok {
		return property.Type{}, fmt.Errorf("struct() requires an object argument, got %T", call.Args[0])
	}

	fields := make([]property.Type, 0, len(obj.Items))
	for _, item := range obj.Items {
		key, err := objectKey(item.KeyExpr)
		if err != nil {
			return property.Type{}, err
		}
		field, err := typeExprToType(ctx, key, item.ValueExpr)
		if err != nil {
			return property.Type{}, fmt.Errorf("field %q: %w", key, err)
		}
		fields = append(fields, field)
	}
	t := property.Struct(name, fields...)
	return t, t.Validate()
}

func arrayType(ctx context.Context, name string, call *hclsyntax.FunctionCallExpr) (property.Type, error) {
	if len(call.Args) != 2 {
		return property.Type{}, fmt.Errorf("array() requires an element type and a length, got %d arguments", len(call.Args))
	}
	elem, err := typeExprToType(ctx, "", call.Args[0])
	if err != nil {
		return property.Type{}, fmt.Errorf("array element: %w", err)
	}

	lenVal, diags := call.Args[1].Value(nil)
	if diags.HasErrors() {
		return property.Type{}, fmt.Errorf("array length: %w", diags)
	}
	var n int
	if lenVal.IsNull() || !lenVal.Type().Equals(cty.Number) {
		return property.Type{}, fmt.Errorf("array length must be a number, got %s", lenVal.Type().FriendlyName())
	}
	if err := gocty.FromCtyValue(lenVal, &n); err != nil {
		return property.Type{}, fmt.Errorf("array length: %w", err)
	}
	t := property.ArrayOf(name, n, elem)
	return t, t.Validate()
}

// objectKey accepts both bare and quoted object keys.
func objectKey(expr hcl.Expression) (string, error) {
	if key := hcl.ExprAsKeyword(expr); key != "" {
		return key, nil
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() || v.IsNull() || !v.Type().Equals(cty.String) {
		return "", fmt.Errorf("struct field names must be identifiers or strings")
	}
	return v.AsString(), nil
}
