// Package navstack provides an in-memory back stack.
//
// It is the reference navigation host used by tests and by headless
// consumers that only need to know what the stack would look like after
// a deep link is applied. The top of the stack is the last entry.
package navstack

// Stack manages navigation history. Entries are kept bottom to top.
// A Stack is not safe for concurrent mutation.
type Stack[T any] struct {
	entries []T
}

// New creates a new empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{
		entries: make([]T, 0),
	}
}

// Push adds a new entry on top of the stack.
func (s *Stack[T]) Push(entry T) {
	s.entries = append(s.entries, entry)
}

// Replace clears the stack and makes entry the new root.
func (s *Stack[T]) Replace(entry T) {
	clear(s.entries)
	s.entries = append(s.entries[:0], entry)
}

// Install replaces the whole stack with entries in one step.
// entries[0] becomes the root and the last entry the top.
func (s *Stack[T]) Install(entries []T) {
	clear(s.entries)
	s.entries = append(s.entries[:0], entries...)
}

// Pop removes and returns the top entry.
// Returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.entries) == 0 {
		return zero, false
	}
	entry := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	return entry, true
}

// Peek returns the top entry without removing it.
// Returns false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.entries) == 0 {
		var zero T
		return zero, false
	}
	return s.entries[len(s.entries)-1], true
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack[T]) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack[T]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack[T]) Entries() []T {
	out := make([]T, len(s.entries))
	copy(out, s.entries)
	return out
}
