package frame_test

import (
	"testing"

	"chuckscope/pkg/frame"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(locals []*frame.Local) []string {
	out := make([]string, len(locals))
	for i, l := range locals {
		out[i] = l.Name
	}
	return out
}

func TestAllocOffsets(t *testing.T) {
	f := frame.New("code")

	var offsets []uint
	for i, size := range []uint{4, 8, 4} {
		l := f.AllocLocal(size, string(rune('a'+i)), false, false, false)
		offsets = append(offsets, l.Offset)
	}

	assert.Equal(t, []uint{0, 4, 12}, offsets)
	assert.Equal(t, uint(16), f.Offset())
	assert.Equal(t, 3, f.Len())
}

func TestAllocFlags(t *testing.T) {
	f := frame.New("code")

	l := f.AllocLocal(8, "osc", true, true, true)
	assert.Equal(t, "osc", l.Name)
	assert.True(t, l.IsRef)
	assert.True(t, l.IsObj)
	assert.True(t, l.IsGlobal)
	assert.Equal(t, "osc@0[8]", l.String())
}

func TestAllocZeroSize(t *testing.T) {
	f := frame.New("code")

	f.AllocLocal(0, "empty", false, false, false)
	l := f.AllocLocal(4, "x", false, false, false)

	assert.Equal(t, uint(0), l.Offset)
	assert.Equal(t, 2, f.Len())
}

func TestPopScopeReleasesOffsets(t *testing.T) {
	f := frame.New("code")
	f.AllocLocal(8, "base", false, false, false)

	f.PushScope()
	f.AllocLocal(4, "a", false, false, false)
	f.AllocLocal(4, "b", false, false, false)
	assert.Equal(t, uint(16), f.Offset())

	out, err := f.PopScope(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, names(out))
	assert.Equal(t, uint(8), f.Offset())
	assert.Equal(t, uint(16), f.MaxOffset())
	assert.Equal(t, 0, f.Depth())
}

func TestPopScopeUnbalanced(t *testing.T) {
	f := frame.New("code")

	_, err := f.PopScope(nil)
	assert.ErrorIs(t, err, frame.ErrUnbalancedScope)

	f.AllocLocal(4, "x", false, false, false)
	out, err := f.PopScope(nil)
	assert.ErrorIs(t, err, frame.ErrUnbalancedScope)
	assert.Empty(t, out)

	// the root scope is untouched
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, uint(4), f.Offset())
}

func TestGetScope(t *testing.T) {
	f := frame.New("code")
	f.AllocLocal(4, "x", false, false, false)
	f.PushScope()
	f.AllocLocal(4, "y", false, false, false)
	f.PushScope()
	f.AllocLocal(4, "z", false, false, false)
	f.AllocLocal(4, "w", false, false, false)

	assert.Equal(t, []string{"w", "z"}, names(f.GetScope(nil, true)))
	assert.Equal(t, []string{"w", "z", "y", "x"}, names(f.GetScope(nil, false)))

	// snapshots do not modify the frame
	assert.Equal(t, 4, f.Len())
	assert.Equal(t, uint(16), f.Offset())
}

func TestGetScopeJustPushed(t *testing.T) {
	f := frame.New("code")
	f.AllocLocal(4, "x", false, false, false)
	f.PushScope()

	assert.Empty(t, f.GetScope(nil, true))
	assert.Equal(t, []string{"x"}, names(f.GetScope(nil, false)))
}

func TestGetScopeAppends(t *testing.T) {
	f := frame.New("code")
	f.AllocLocal(4, "x", false, false, false)

	prev := &frame.Local{Name: "prev"}
	out := f.GetScope([]*frame.Local{prev}, true)
	assert.Equal(t, []string{"prev", "x"}, names(out))
}

func TestNestedScopes(t *testing.T) {
	f := frame.New("fun")
	f.PushScope()
	f.AllocLocal(8, "outer", false, false, false)
	f.PushScope()
	f.AllocLocal(8, "inner", false, false, false)

	out, err := f.PopScope(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"inner"}, names(out))

	out, err = f.PopScope(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"inner", "outer"}, names(out))
	assert.Equal(t, uint(0), f.Offset())
	assert.Equal(t, 0, f.Len())
}

func TestOffsetReuse(t *testing.T) {
	f := frame.New("code")

	x := f.AllocLocal(4, "x", false, false, false)
	assert.Equal(t, uint(0), x.Offset)
	assert.Equal(t, uint(4), f.Offset())

	f.PushScope()
	y := f.AllocLocal(4, "y", false, false, false)
	assert.Equal(t, uint(4), y.Offset)
	assert.Equal(t, uint(8), f.Offset())

	out, err := f.PopScope(nil)
	require.NoError(t, err)
	assert.Equal(t, []*frame.Local{y}, out)
	assert.Equal(t, uint(4), f.Offset())

	z := f.AllocLocal(4, "z", false, false, false)
	assert.Equal(t, uint(4), z.Offset)
	assert.Equal(t, uint(8), f.Offset())
}
