// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
	"pgregory.net/rapid"
)

type endpoints struct {
	node *logicnode.Node
	in   *property.Property
	out  *property.Property
}

func rapidRelay(t *rapid.T, e *Engine, name string) endpoints {
	out := property.Struct("", property.Prim("o", value.Int32))
	n, err := e.CreateNode(name, logicnode.Blueprint{
		Inputs:   property.Struct("", property.Prim("i", value.Int32)),
		Outputs:  &out,
		Behavior: logicnode.BehaviorFunc(func(context.Context, *logicnode.Node) error { return nil }),
	})
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	in, _ := n.Inputs().ChildByName("i")
	o, _ := n.Outputs().ChildByName("o")
	return endpoints{node: n, in: in, out: o}
}

// Random link, weak link and unlink sequences never give a property two
// incoming links, and a failed call never changes the link set.
func TestLinkRegistry_Invariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := New()
		count := rapid.IntRange(2, 5).Draw(t, "nodes")
		nodes := make([]endpoints, count)
		for i := range nodes {
			nodes[i] = rapidRelay(t, e, fmt.Sprintf("n%d", i))
		}

		type key struct{ src, dst handle.PropertyID }
		model := map[handle.PropertyID]key{}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for range steps {
			from := nodes[rapid.IntRange(0, count-1).Draw(t, "from")]
			to := nodes[rapid.IntRange(0, count-1).Draw(t, "to")]
			op := rapid.SampledFrom([]string{"link", "weak", "unlink"}).Draw(t, "op")

			before := len(e.AllLinks())
			var err error
			switch op {
			case "link":
				err = e.Link(from.out, to.in)
			case "weak":
				err = e.LinkWeak(from.out, to.in)
			case "unlink":
				err = e.Unlink(from.out, to.in)
			}

			_, taken := model[to.in.ID()]
			existing := model[to.in.ID()]
			switch {
			case op == "unlink":
				wantOK := taken && existing.src == from.out.ID()
				if (err == nil) != wantOK {
					t.Fatalf("unlink %s -> %s: err=%v, want success=%v", from.node.Name(), to.node.Name(), err, wantOK)
				}
				if wantOK {
					delete(model, to.in.ID())
				}
			default:
				wantOK := from.node != to.node && !taken
				if (err == nil) != wantOK {
					t.Fatalf("%s %s -> %s: err=%v, want success=%v", op, from.node.Name(), to.node.Name(), err, wantOK)
				}
				if wantOK {
					model[to.in.ID()] = key{src: from.out.ID(), dst: to.in.ID()}
				}
			}
			if err != nil && len(e.AllLinks()) != before {
				t.Fatalf("failed %s changed the link set", op)
			}

			seen := map[handle.PropertyID]bool{}
			for _, l := range e.AllLinks() {
				if seen[l.Target.ID()] {
					t.Fatalf("property %s has two incoming links", l.Target.Path())
				}
				seen[l.Target.ID()] = true
				if model[l.Target.ID()].src != l.Source.ID() {
					t.Fatalf("link set diverged from model")
				}
			}
			if len(seen) != len(model) {
				t.Fatalf("engine has %d links, model has %d", len(seen), len(model))
			}
		}
	})
}
