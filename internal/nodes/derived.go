// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package nodes

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// ValueField is the single output of a derived node.
const ValueField = "value"

var derivedFunctions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"floor":  stdlib.FloorFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"upper":  stdlib.UpperFunc,
	"lower":  stdlib.LowerFunc,
	"format": stdlib.FormatFunc,
	"length": stdlib.LengthFunc,
	"concat": stdlib.ConcatFunc,
}

// Derived is a parsed derived-node expression.
type Derived struct {
	Source string
	expr   hclsyntax.Expression
	output value.Kind
}

// NewDerived builds a node computing expression over its inputs, e.g.
// "speed * 2" or "format(\"%s!\", name)". Every variable the expression
// uses must be an input.
func NewDerived(inputs property.Type, output value.Kind, expression string) (logicnode.Blueprint, error) {
	if !output.IsPrimitive() {
		return logicnode.Blueprint{}, fmt.Errorf("derived output must be primitive, got %s", output)
	}
	expr, diags := hclsyntax.ParseExpression([]byte(expression), "expression", hcl.InitialPos)
	if diags.HasErrors() {
		return logicnode.Blueprint{}, fmt.Errorf("parse expression %q: %s", expression, diags.Error())
	}
	for _, tr := range expr.Variables() {
		if _, ok := inputs.Field(tr.RootName()); !ok {
			return logicnode.Blueprint{}, fmt.Errorf("expression %q uses unknown input %q", expression, tr.RootName())
		}
	}

	d := &Derived{Source: expression, expr: expr, output: output}
	outputs := property.Struct("outputs", property.Prim(ValueField, output))
	return logicnode.Blueprint{
		Kind:     logicnode.KindDerived,
		Inputs:   property.Struct("inputs", inputs.Fields...),
		Outputs:  &outputs,
		Behavior: d,
	}, nil
}

func (d *Derived) Execute(_ context.Context, n *logicnode.Node) error {
	vars := map[string]cty.Value{}
	for _, in := range n.Inputs().Children() {
		vars[in.Name()] = in.Cty()
	}
	evalCtx := &hcl.EvalContext{Variables: vars, Functions: derivedFunctions}

	result, diags := d.expr.Value(evalCtx)
	if diags.HasErrors() {
		return fmt.Errorf("evaluate %q: %s", d.Source, diags.Error())
	}
	v, err := value.FromCty(d.output, result)
	if err != nil {
		return fmt.Errorf("evaluate %q: %w", d.Source, err)
	}
	out, err := n.Outputs().ChildByName(ValueField)
	if err != nil {
		return err
	}
	_, err = out.Write(v)
	return err
}

// DerivedOf returns the expression behind a derived node.
func DerivedOf(n *logicnode.Node) (*Derived, bool) {
	if n == nil {
		return nil, false
	}
	d, ok := n.Behavior().(*Derived)
	return d, ok
}

// Output is the declared output kind.
func (d *Derived) Output() value.Kind { return d.output }
