// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes every top-level block a scene file may contain. Unknown
// blocks and attributes are errors.
type fileRoot struct {
	DataArrays []*dataArrayBlock `hcl:"dataarray,block"`
	Nodes      []*nodeBlock      `hcl:"node,block"`
	Links      []*linkBlock      `hcl:"link,block"`
}

type dataArrayBlock struct {
	Name string    `hcl:"name,label"`
	Data []float64 `hcl:"data"`
}

type nodeBlock struct {
	Kind       string          `hcl:"kind,label"`
	Name       string          `hcl:"name,label"`
	Script     string          `hcl:"script,optional"`
	Object     string          `hcl:"object,optional"`
	Expression string          `hcl:"expression,optional"`
	Output     hcl.Expression  `hcl:"output,optional"`
	Values     hcl.Expression  `hcl:"values,optional"`
	Inputs     []*inputBlock   `hcl:"input,block"`
	Channels   []*channelBlock `hcl:"channel,block"`
}

type inputBlock struct {
	Name string         `hcl:"name,label"`
	Type hcl.Expression `hcl:"type"`
}

type channelBlock struct {
	Name       string `hcl:"name,label"`
	Timestamps string `hcl:"timestamps"`
	Keyframes  string `hcl:"keyframes"`
	Easing     string `hcl:"easing,optional"`
}

type linkBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
	Weak bool   `hcl:"weak,optional"`
}
