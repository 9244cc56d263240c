package stack

type Stack[T any] struct {
	a []T
}

// NewStack creates a new stack instance with room for size elements
func NewStack[T any](size int, elm ...T) *Stack[T] {
	if size < len(elm) {
		size = len(elm)
	}

	stack := Stack[T]{
		a: make([]T, 0, size),
	}
	stack.a = append(stack.a, elm...)

	return &stack
}

// Push adds an element to the top of the stack
func (s *Stack[T]) Push(elm T) {
	s.a = append(s.a, elm)
}

// Pop removes and returns the top element of the stack
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.a) < 1 {
		return zero, false
	}

	l := len(s.a) - 1
	elm := s.a[l]
	s.a[l] = zero // release the reference
	s.a = s.a[:l]

	return elm, true
}

// Peek returns the top element of the stack without removing it
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.a) < 1 {
		var zero T
		return zero, false
	}

	return s.a[len(s.a)-1], true
}

// At returns the element i positions below the top (0 is the top)
func (s *Stack[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.a) {
		var zero T
		return zero, false
	}

	return s.a[len(s.a)-1-i], true
}

// Get the size of the stack
func (s *Stack[T]) Size() int {
	return len(s.a)
}

// Clear drops every element, keeping the allocated capacity
func (s *Stack[T]) Clear() {
	clear(s.a)
	s.a = s.a[:0]
}

// Array returns the underlying array of the stack, bottom first
func (s *Stack[T]) Array() []T {
	return s.a
}
