// Package orderedset implements a set that remembers insertion order.
package orderedset

// Set is not safe for concurrent use.
type Set[T comparable] struct {
	index map[T]int
	items []T
}

func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]int)}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts v if absent and reports whether it was inserted.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

func (s *Set[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Index returns the insertion position of v or -1.
func (s *Set[T]) Index(v T) int {
	i, ok := s.index[v]
	if !ok {
		return -1
	}
	return i
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the elements in first-seen order.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
