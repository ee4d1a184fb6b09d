// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package engine

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/specialistvlad/scenelogic/internal/ctxlog"
	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/inmemorylinks"
	"github.com/specialistvlad/scenelogic/internal/inmemorystore"
	"github.com/specialistvlad/scenelogic/internal/linkstore"
	"github.com/specialistvlad/scenelogic/internal/nodestore"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/scheduler"
	"github.com/specialistvlad/scenelogic/internal/topology"
)

// Engine owns a scene-logic graph and runs it frame by frame.
type Engine struct {
	id     uuid.UUID
	name   string
	logger *slog.Logger

	seq   handle.Sequence
	nodes nodestore.Store
	links linkstore.Store
	topo  *topology.Cache
	sched *scheduler.Scheduler

	observers []Observer
	errs      []error
	updating  bool
	frame     uint64
	last      Report
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for engine diagnostics. The default
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithName labels the engine in logs and reports.
func WithName(name string) Option {
	return func(e *Engine) { e.name = name }
}

// WithObserver registers an observer notified after every Update.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}

// New creates an empty engine backed by the in-memory stores.
func New(opts ...Option) *Engine {
	return NewWithStores(inmemorystore.New(), inmemorylinks.New(), opts...)
}

// NewWithStores creates an empty engine on top of the given stores.
func NewWithStores(nodes nodestore.Store, links linkstore.Store, opts ...Option) *Engine {
	e := &Engine{
		id:     uuid.New(),
		name:   "scene",
		logger: ctxlog.Discard(),
		nodes:  nodes,
		links:  links,
		topo:   &topology.Cache{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("engine", e.name)
	e.sched = scheduler.New(e.nodes, e.links, e.topo)
	return e
}

// ID returns the unique identity of this engine instance.
func (e *Engine) ID() uuid.UUID { return e.id }

// Name returns the engine label.
func (e *Engine) Name() string { return e.name }

// AddObserver registers an observer notified after every Update.
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Errors returns the errors recorded by the most recent call.
func (e *Engine) Errors() []error {
	return slices.Clone(e.errs)
}

// beginCall resets the per-call error list. Mutations are refused while an
// update runs.
func (e *Engine) beginCall(mutating bool) error {
	e.errs = nil
	if mutating && e.updating {
		return e.fail(ErrUpdateInProgress)
	}
	return nil
}

func (e *Engine) fail(err error) error {
	e.errs = append(e.errs, err)
	return err
}

// owns reports whether p is a live property of this engine.
func (e *Engine) owns(p *property.Property) bool {
	if p == nil {
		return false
	}
	got, ok := e.nodes.Property(p.ID())
	return ok && got == p
}

// describe renders a property as "node.inputs.a.b" for messages.
func (e *Engine) describe(p *property.Property) string {
	if p == nil {
		return "<nil>"
	}
	if p.Owner() != nil {
		if n, ok := e.nodes.Get(p.Owner().NodeID()); ok {
			return n.Name() + "." + p.Path()
		}
	}
	return fmt.Sprintf("%s(%s)", p.Path(), p.ID())
}

// Stats is a point-in-time summary of an engine.
type Stats struct {
	Engine        string `json:"engine"`
	Nodes         int    `json:"nodes"`
	Links         int    `json:"links"`
	StrongLinks   int    `json:"strong_links"`
	WeakLinks     int    `json:"weak_links"`
	Frame         uint64 `json:"frame"`
	LastExecuted  int    `json:"last_executed"`
	TopologyValid bool   `json:"topology_valid"`
}

// Stats summarizes the engine.
func (e *Engine) Stats() Stats {
	s := Stats{
		Engine:        e.name,
		Nodes:         e.nodes.Len(),
		Frame:         e.frame,
		LastExecuted:  len(e.last.Executed),
		TopologyValid: e.topo.Valid(),
	}
	for _, l := range e.links.All() {
		s.Links++
		if l.Weak {
			s.WeakLinks++
		} else {
			s.StrongLinks++
		}
	}
	return s
}
