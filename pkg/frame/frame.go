package frame

import (
	"errors"
	"fmt"

	"chuckscope/pkg/stack"
)

// ErrUnbalancedScope is returned by PopScope when no scope was pushed
var ErrUnbalancedScope = errors.New("unbalanced scope")

// Local is one variable slot of a frame.
type Local struct {
	Name     string // variable name
	Size     uint   // size in bytes
	Offset   uint   // byte offset from the start of the frame
	IsRef    bool   // holds a reference
	IsObj    bool   // object type
	IsGlobal bool   // declared global
}

// String returns a string representation of the local
func (l *Local) String() string {
	return fmt.Sprintf("%s@%d[%d]", l.Name, l.Offset, l.Size)
}

// slot is either a local or, when local is nil, a scope boundary
type slot struct {
	local *Local
}

// Frame lays out the locals of one activation. Nested scopes release their
// locals and offsets when popped so sibling scopes reuse the same bytes.
type Frame struct {
	Name string

	slots     *stack.Stack[slot]
	offset    uint // next free byte
	maxOffset uint // high-water mark of offset
	depth     int  // pushed scopes
}

// New creates an empty frame
func New(name string) *Frame {
	return &Frame{
		Name:  name,
		slots: stack.NewStack[slot](16),
	}
}

// AllocLocal places a new local at the current offset and advances it by size
func (f *Frame) AllocLocal(size uint, name string, isRef, isObj, isGlobal bool) *Local {
	local := &Local{
		Name:     name,
		Size:     size,
		Offset:   f.offset,
		IsRef:    isRef,
		IsObj:    isObj,
		IsGlobal: isGlobal,
	}

	f.offset += size
	f.maxOffset = max(f.maxOffset, f.offset)
	f.slots.Push(slot{local: local})

	return local
}

// PushScope opens a nested scope
func (f *Frame) PushScope() {
	f.slots.Push(slot{})
	f.depth++
}

// GetScope appends the visible locals to out, most recent first. With
// localOnly it stops at the innermost scope boundary.
func (f *Frame) GetScope(out []*Local, localOnly bool) []*Local {
	for i := 0; i < f.slots.Size(); i++ {
		s, _ := f.slots.At(i)
		if s.local == nil {
			if localOnly {
				break
			}
			continue
		}
		out = append(out, s.local)
	}
	return out
}

// PopScope removes the locals of the innermost scope, appending them to out
// in pop order, and gives their bytes back to the frame
func (f *Frame) PopScope(out []*Local) ([]*Local, error) {
	if f.depth == 0 {
		return out, ErrUnbalancedScope
	}

	for {
		s, _ := f.slots.Pop()
		if s.local == nil {
			break
		}
		f.offset -= s.local.Size
		out = append(out, s.local)
	}
	f.depth--

	return out, nil
}

// Offset returns the next free byte offset
func (f *Frame) Offset() uint {
	return f.offset
}

// MaxOffset returns the largest offset reached, i.e. the bytes the frame needs
func (f *Frame) MaxOffset() uint {
	return f.maxOffset
}

// Depth returns the number of open nested scopes
func (f *Frame) Depth() int {
	return f.depth
}

// Len returns the number of live locals
func (f *Frame) Len() int {
	return f.slots.Size() - f.depth
}
