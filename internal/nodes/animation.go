// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package nodes

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/scenelogic/internal/handle"
	"github.com/specialistvlad/scenelogic/internal/logicnode"
	"github.com/specialistvlad/scenelogic/internal/property"
	"github.com/specialistvlad/scenelogic/internal/value"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// ProgressField is the animation input in [0, 1].
	ProgressField = "progress"
	// DurationField is the animation output holding the last timestamp.
	DurationField = "duration"
)

var (
	ErrUnknownEasing  = errors.New("unknown easing")
	ErrBadChannel     = errors.New("invalid animation channel")
	ErrNotADataArray  = errors.New("node is not a data array")
	ErrEmptyAnimation = errors.New("animation has no channels")
)

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_cubic":     ease.InCubic,
	"out_cubic":    ease.OutCubic,
	"in_out_cubic": ease.InOutCubic,
	"in_sine":      ease.InSine,
	"out_sine":     ease.OutSine,
	"in_out_sine":  ease.InOutSine,
	"out_bounce":   ease.OutBounce,
	"out_elastic":  ease.OutElastic,
}

// Easings lists the supported easing names in sorted order.
func Easings() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Channel animates one float output. Timestamps and Keyframes must be
// data array nodes of equal length.
type Channel struct {
	Name       string
	Timestamps *logicnode.Node
	Keyframes  *logicnode.Node
	Easing     string
}

type track struct {
	name  string
	times value.Floats
	keys  value.Floats
	fn    ease.TweenFunc
}

// NewAnimation builds an animation node. Timestamps must be strictly
// increasing. An empty easing means linear.
func NewAnimation(channels ...Channel) (logicnode.Blueprint, error) {
	if len(channels) == 0 {
		return logicnode.Blueprint{}, ErrEmptyAnimation
	}

	var (
		tracks   []track
		refs     []handle.NodeID
		fields   = []property.Type{property.Prim(DurationField, value.Float)}
		duration float32
	)
	for _, ch := range channels {
		tr, err := newTrack(ch)
		if err != nil {
			return logicnode.Blueprint{}, err
		}
		tracks = append(tracks, tr)
		refs = append(refs, ch.Timestamps.ID(), ch.Keyframes.ID())
		fields = append(fields, property.Prim(ch.Name, value.Float))
		duration = max(duration, tr.times[len(tr.times)-1])
	}

	outputs := property.Struct("outputs", fields...)
	if err := outputs.Validate(); err != nil {
		return logicnode.Blueprint{}, fmt.Errorf("%w: %w", ErrBadChannel, err)
	}

	return logicnode.Blueprint{
		Kind:       logicnode.KindAnimation,
		Inputs:     property.Struct("inputs", property.Prim(ProgressField, value.Float)),
		InputRole:  property.AnimationInput,
		Outputs:    &outputs,
		OutputRole: property.AnimationOutput,
		References: refs,
		Behavior: logicnode.BehaviorFunc(func(_ context.Context, n *logicnode.Node) error {
			progress, err := property.Get[float32](n.Inputs(), ProgressField)
			if err != nil {
				return err
			}
			t := min(max(progress, 0), 1) * duration
			if _, err := property.Put(n.Outputs(), DurationField, duration); err != nil {
				return err
			}
			for _, tr := range tracks {
				if _, err := property.Put(n.Outputs(), tr.name, tr.sample(t)); err != nil {
					return err
				}
			}
			return nil
		}),
	}, nil
}

func newTrack(ch Channel) (track, error) {
	if ch.Name == "" || ch.Name == DurationField {
		return track{}, fmt.Errorf("%w: name %q", ErrBadChannel, ch.Name)
	}
	times, ok := DataOf(ch.Timestamps)
	if !ok {
		return track{}, fmt.Errorf("channel %q timestamps: %w", ch.Name, ErrNotADataArray)
	}
	keys, ok := DataOf(ch.Keyframes)
	if !ok {
		return track{}, fmt.Errorf("channel %q keyframes: %w", ch.Name, ErrNotADataArray)
	}
	if len(times) == 0 || len(times) != len(keys) {
		return track{}, fmt.Errorf("%w: channel %q has %d timestamps and %d keyframes", ErrBadChannel, ch.Name, len(times), len(keys))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return track{}, fmt.Errorf("%w: channel %q timestamps are not strictly increasing at %d", ErrBadChannel, ch.Name, i)
		}
	}

	name := ch.Easing
	if name == "" {
		name = "linear"
	}
	fn, ok := easings[name]
	if !ok {
		return track{}, fmt.Errorf("channel %q: %w %q", ch.Name, ErrUnknownEasing, ch.Easing)
	}
	return track{name: ch.Name, times: times, keys: keys, fn: fn}, nil
}

// sample returns the channel value at time t, holding the first and last
// keyframes outside the timestamp range.
func (tr track) sample(t float32) float32 {
	last := len(tr.times) - 1
	if t <= tr.times[0] {
		return tr.keys[0]
	}
	if t >= tr.times[last] {
		return tr.keys[last]
	}
	i := sort.Search(len(tr.times), func(i int) bool { return tr.times[i] > t }) - 1
	span := tr.times[i+1] - tr.times[i]
	tw := gween.New(tr.keys[i], tr.keys[i+1], span, tr.fn)
	v, _ := tw.Update(t - tr.times[i])
	return v
}
