// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/scenelogic/internal/config"
	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// Saver is the HCL-specific implementation of the config.Saver interface.
type Saver struct{}

// NewSaver creates a new HCL scene writer.
func NewSaver() *Saver {
	return &Saver{}
}

var _ config.Saver = (*Saver)(nil)

// Save writes m as a single scene file that Loader reads back into an
// equivalent model.
func (s *Saver) Save(ctx context.Context, w io.Writer, m *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for _, da := range m.DataArrays {
		b := root.AppendNewBlock("dataarray", []string{da.Name}).Body()
		b.SetAttributeValue("data", floatList(da.Data))
		root.AppendNewline()
	}

	for _, n := range m.Nodes {
		if err := writeNode(root, n); err != nil {
			return fmt.Errorf("node %q: %w", n.Name, err)
		}
		root.AppendNewline()
	}

	for _, l := range m.Links {
		b := root.AppendNewBlock("link", nil).Body()
		b.SetAttributeValue("from", cty.StringVal(l.From))
		b.SetAttributeValue("to", cty.StringVal(l.To))
		if l.Weak {
			b.SetAttributeValue("weak", cty.True)
		}
	}

	n, err := w.Write(hclwrite.Format(f.Bytes()))
	if err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	logger.Debug("Scene saved.", "bytes", n, "nodes", len(m.Nodes), "links", len(m.Links))
	return nil
}

func writeNode(root *hclwrite.Body, n *config.Node) error {
	b := root.AppendNewBlock("node", []string{n.Kind, n.Name}).Body()
	if n.Script != "" {
		b.SetAttributeValue("script", cty.StringVal(n.Script))
	}
	if n.Object != "" {
		b.SetAttributeValue("object", cty.StringVal(n.Object))
	}
	if n.Expression != "" {
		b.SetAttributeValue("expression", cty.StringVal(n.Expression))
	}
	if n.Output.IsPrimitive() {
		b.SetAttributeRaw("output", hclwrite.TokensForIdentifier(n.Output.String()))
	}

	if len(n.Values) > 0 {
		b.SetAttributeRaw("values", valueTokens(n.Values))
	}

	for _, in := range n.Inputs {
		tokens, err := typeTokens(in)
		if err != nil {
			return fmt.Errorf("input %q: %w", in.Name, err)
		}
		b.AppendNewBlock("input", []string{in.Name}).Body().SetAttributeRaw("type", tokens)
	}

	for _, ch := range n.Channels {
		cb := b.AppendNewBlock("channel", []string{ch.Name}).Body()
		cb.SetAttributeValue("timestamps", cty.StringVal(ch.Timestamps))
		cb.SetAttributeValue("keyframes", cty.StringVal(ch.Keyframes))
		if ch.Easing != "" {
			cb.SetAttributeValue("easing", cty.StringVal(ch.Easing))
		}
	}

	return nil
}

// valueTokens writes one attribute per line in name order.
func valueTokens(values map[string]cty.Value) hclwrite.Tokens {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]hclwrite.ObjectAttrTokens, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, hclwrite.ObjectAttrTokens{
			Name:  hclwrite.TokensForIdentifier(name),
			Value: hclwrite.TokensForValue(values[name]),
		})
	}
	return hclwrite.TokensForObject(attrs)
}

// typeTokens renders t in the type expression grammar read by
// typeExprToType.
func typeTokens(t property.Type) (hclwrite.Tokens, error) {
	switch {
	case t.Kind.IsPrimitive():
		return hclwrite.TokensForIdentifier(t.Kind.String()), nil
	case t.Kind == value.Struct:
		attrs := make([]hclwrite.ObjectAttrTokens, 0, len(t.Fields))
		for _, f := range t.Fields {
			ft, err := typeTokens(f)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, hclwrite.ObjectAttrTokens{Name: hclwrite.TokensForIdentifier(f.Name), Value: ft})
		}
		return hclwrite.TokensForFunctionCall("struct", hclwrite.TokensForObject(attrs)), nil
	case t.Kind == value.Array && t.Elem != nil:
		et, err := typeTokens(*t.Elem)
		if err != nil {
			return nil, err
		}
		return hclwrite.TokensForFunctionCall("array", et, hclwrite.TokensForValue(cty.NumberIntVal(int64(t.Len)))), nil
	}
	return nil, fmt.Errorf("cannot write type of kind %s", t.Kind)
}

func floatList(data []float32) cty.Value {
	if len(data) == 0 {
		return cty.ListValEmpty(cty.Number)
	}
	return value.Of(value.Floats(data)).ToCty()
}
