// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package scene

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/specialistvlad/scenelogic/internal/config"
	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/engine"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/nodes"
)

// Library supplies the host-side pieces a scene refers to by name.
// *registry.Registry implements it.
type Library interface {
	Script(name string) (nodes.Script, error)
	Object(objectType, name string) (nodes.SceneObject, error)
	Clock() nodes.Clock
}

// Apply builds m into e.
func Apply(ctx context.Context, e *engine.Engine, m *config.Model, lib Library) error {
	logger := ctxlog.FromContext(ctx)
	if err := m.Validate(); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}

	var result *multierror.Error
	for _, da := range m.DataArrays {
		if _, err := e.CreateNode(da.Name, nodes.NewDataArray(da.Data)); err != nil {
			result = multierror.Append(result, fmt.Errorf("dataarray %q: %w", da.Name, err))
		}
	}

	created := make([]*config.Node, 0, len(m.Nodes))
	for _, def := range m.Nodes {
		bp, err := blueprint(e, def, lib)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("node %q: %w", def.Name, err))
			continue
		}
		if _, err := e.CreateNode(def.Name, bp); err != nil {
			result = multierror.Append(result, fmt.Errorf("node %q: %w", def.Name, err))
			continue
		}
		created = append(created, def)
	}

	for _, def := range created {
		for _, err := range assignValues(e, def) {
			result = multierror.Append(result, fmt.Errorf("node %q: %w", def.Name, err))
		}
	}

	for _, l := range m.Links {
		if err := link(e, l); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		logger.Warn("Scene applied with errors.", "errors", len(result.Errors))
		return err
	}
	logger.Info("Scene applied.", "dataarrays", len(m.DataArrays), "nodes", len(m.Nodes), "links", len(m.Links))
	return nil
}

func blueprint(e *engine.Engine, def *config.Node, lib Library) (logicnode.Blueprint, error) {
	switch logicnode.Kind(def.Kind) {
	case logicnode.KindScript:
		s, err := lib.Script(def.Script)
		if err != nil {
			return logicnode.Blueprint{}, err
		}
		return nodes.NewScript(s), nil
	case logicnode.KindTimer:
		return nodes.NewTimer(lib.Clock()), nil
	case logicnode.KindAnimation:
		channels := make([]nodes.Channel, 0, len(def.Channels))
		for _, ch := range def.Channels {
			ts, ok := e.Node(ch.Timestamps)
			if !ok {
				return logicnode.Blueprint{}, fmt.Errorf("channel %q: timestamps %q: %w", ch.Name, ch.Timestamps, engine.ErrUnknownNode)
			}
			kf, ok := e.Node(ch.Keyframes)
			if !ok {
				return logicnode.Blueprint{}, fmt.Errorf("channel %q: keyframes %q: %w", ch.Name, ch.Keyframes, engine.ErrUnknownNode)
			}
			channels = append(channels, nodes.Channel{Name: ch.Name, Timestamps: ts, Keyframes: kf, Easing: ch.Easing})
		}
		return nodes.NewAnimation(channels...)
	case logicnode.KindBinding:
		obj, err := lib.Object(def.Object, def.Name)
		if err != nil {
			return logicnode.Blueprint{}, err
		}
		return nodes.NewBinding(obj, def.InputType())
	case logicnode.KindInterface:
		return nodes.NewInterface(def.InputType()), nil
	case logicnode.KindDerived:
		return nodes.NewDerived(def.InputType(), def.Output, def.Expression)
	}
	return logicnode.Blueprint{}, fmt.Errorf("unknown kind %q", def.Kind)
}

// assignValues sets initial input values in name order.
func assignValues(e *engine.Engine, def *config.Node) []error {
	n, ok := e.Node(def.Name)
	if !ok {
		return []error{engine.ErrUnknownNode}
	}
	names := make([]string, 0, len(def.Values))
	for name := range def.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		p, err := n.Inputs().ChildByName(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("value %q: %w", name, err))
			continue
		}
		if err := p.Assign(def.Values[name]); err != nil {
			errs = append(errs, fmt.Errorf("value %q: %w", name, err))
		}
	}
	return errs
}

func link(e *engine.Engine, l *config.Link) error {
	from, err := e.FindProperty(l.From)
	if err != nil {
		return fmt.Errorf("link %s -> %s: %w", l.From, l.To, err)
	}
	to, err := e.FindProperty(l.To)
	if err != nil {
		return fmt.Errorf("link %s -> %s: %w", l.From, l.To, err)
	}
	if l.Weak {
		return e.LinkWeak(from, to)
	}
	return e.Link(from, to)
}
