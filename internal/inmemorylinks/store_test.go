// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package inmemorylinks

import (
	"testing"

	"github.com/specialistvlad/scenelogic/internal/linkstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndIncoming(t *testing.T) {
	s := New()
	l := linkstore.Link{Source: 10, Target: 20, SourceNode: 1, TargetNode: 2}

	require.NoError(t, s.Add(l))

	got, ok := s.Incoming(20)
	require.True(t, ok)
	assert.Equal(t, l, got)
	assert.True(t, s.HasIncoming(20))
	assert.False(t, s.HasIncoming(10))
	assert.Equal(t, 1, s.Len())
}

func TestAdd_SingleIncoming(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(linkstore.Link{Source: 10, Target: 20, SourceNode: 1, TargetNode: 2}))

	err := s.Add(linkstore.Link{Source: 11, Target: 20, SourceNode: 3, TargetNode: 2})
	assert.ErrorIs(t, err, linkstore.ErrTargetTaken)

	err = s.Add(linkstore.Link{Source: 11, Target: 20, SourceNode: 3, TargetNode: 2, Weak: true})
	assert.ErrorIs(t, err, linkstore.ErrTargetTaken, "weak links count as incoming too")
	assert.Equal(t, 1, s.Len())
}

func TestOutgoing_FanOutInCreationOrder(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(linkstore.Link{Source: 10, Target: 30, SourceNode: 1, TargetNode: 3}))
	require.NoError(t, s.Add(linkstore.Link{Source: 10, Target: 20, SourceNode: 1, TargetNode: 2}))
	require.NoError(t, s.Add(linkstore.Link{Source: 11, Target: 40, SourceNode: 1, TargetNode: 4}))

	out := s.Outgoing(10)
	require.Len(t, out, 2)
	assert.EqualValues(t, 30, out[0].Target)
	assert.EqualValues(t, 20, out[1].Target)
}

func TestRemove(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(linkstore.Link{Source: 10, Target: 20, SourceNode: 1, TargetNode: 2}))

	_, err := s.Remove(11, 20)
	assert.ErrorIs(t, err, linkstore.ErrNotFound, "source must match")

	removed, err := s.Remove(10, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 10, removed.Source)
	assert.False(t, s.HasIncoming(20))
	assert.Zero(t, s.Len())

	_, err = s.Remove(10, 20)
	assert.ErrorIs(t, err, linkstore.ErrNotFound)

	require.NoError(t, s.Add(linkstore.Link{Source: 12, Target: 20, SourceNode: 5, TargetNode: 2}), "target is free again")
}

func TestTouching(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(linkstore.Link{Source: 10, Target: 20, SourceNode: 1, TargetNode: 2}))
	require.NoError(t, s.Add(linkstore.Link{Source: 21, Target: 30, SourceNode: 2, TargetNode: 3}))
	require.NoError(t, s.Add(linkstore.Link{Source: 31, Target: 40, SourceNode: 3, TargetNode: 4}))

	assert.Len(t, s.Touching(2), 2)
	assert.Len(t, s.Touching(4), 1)
	assert.Empty(t, s.Touching(9))
}

func TestAll_IsSnapshot(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(linkstore.Link{Source: 10, Target: 20}))
	all := s.All()
	all[0].Target = 99

	got, ok := s.Incoming(20)
	require.True(t, ok)
	assert.EqualValues(t, 20, got.Target)
	assert.EqualValues(t, 20, s.All()[0].Target)
}
