// SPDX-License-Identifier: MIT

//go:build arenadebug

package arena_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/arena"
)

func TestAt_ForeignHandlePanics(t *testing.T) {
	require.True(t, arena.DebugChecks)

	a := arena.New(identity, intEqual, arena.WithCapacity(4))
	b := arena.New(identity, intEqual, arena.WithCapacity(4))
	h, err := a.Insert(1)
	require.NoError(t, err)
	_, err = b.Insert(1)
	require.NoError(t, err)

	require.False(t, b.Valid(h), "signature mismatch must invalidate the handle")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, arena.ErrInvalidHandle))
	}()
	_ = b.At(h)
}

func TestGrow_InvalidatesOldHandles(t *testing.T) {
	a := arena.NewComparable[int]()
	h, err := a.Insert(3)
	require.NoError(t, err)
	next, remap, err := arena.Grow(a)
	require.NoError(t, err)
	require.False(t, next.Valid(h))
	require.True(t, next.Valid(remap[h]))
}
