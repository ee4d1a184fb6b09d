// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package propaddr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex matches `name`, `name[1]` and `name[1][2]`.
var (
	segmentRegex = regexp.MustCompile(`^([a-zA-Z_][a-zA-Z0-9_-]*)((?:\[\d+\])*)$`)
	indexRegex   = regexp.MustCompile(`\[(\d+)\]`)
)

// Parse turns raw into an Address. Errors wrap ErrInvalid.
func Parse(raw string) (Address, error) {
	if raw == "" {
		return Address{}, fmt.Errorf("%w: address cannot be empty", ErrInvalid)
	}
	parts := strings.Split(raw, ".")
	if len(parts) < 2 {
		return Address{}, fmt.Errorf("%w: %q needs a node and a tree", ErrInvalid, raw)
	}

	segs := make([]Segment, len(parts))
	for i, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return Address{}, fmt.Errorf("%w: %q: %w", ErrInvalid, raw, err)
		}
		segs[i] = seg
	}

	if len(segs[0].Indices) > 0 {
		return Address{}, fmt.Errorf("%w: %q: node %q cannot be indexed", ErrInvalid, raw, segs[0].Name)
	}
	tree := Tree(segs[1].Name)
	if tree != Inputs && tree != Outputs {
		return Address{}, fmt.Errorf("%w: %q: tree must be %q or %q, got %q", ErrInvalid, raw, Inputs, Outputs, tree)
	}

	addr := Address{
		Node:        segs[0].Name,
		Tree:        tree,
		RootIndices: segs[1].Indices,
	}
	if len(segs) > 2 {
		addr.Path = segs[2:]
	}
	return addr, nil
}

func parseSegment(s string) (Segment, error) {
	if s == "" {
		return Segment{}, fmt.Errorf("empty segment")
	}
	matches := segmentRegex.FindStringSubmatch(s)
	if matches == nil {
		return Segment{}, fmt.Errorf("invalid segment %q", s)
	}

	seg := Segment{Name: matches[1]}
	for _, m := range indexRegex.FindAllStringSubmatch(matches[2], -1) {
		i, err := strconv.Atoi(m[1])
		if err != nil {
			return Segment{}, fmt.Errorf("segment %q: %w", s, err)
		}
		seg.Indices = append(seg.Indices, i)
	}
	return seg, nil
}
