// Package set provides an immutable, insertion-ordered hash set.
package set

import "encoding/json"

// Ordered is an immutable set that remembers insertion order. The zero value
// is an empty set. Methods that change membership return a new set and leave
// the receiver untouched, so values can be shared freely between snapshots.
type Ordered[T comparable] struct {
	items []T
	index map[T]struct{}
}

// Of builds a set from items, dropping duplicates after their first occurrence.
func Of[T comparable](items ...T) Ordered[T] {
	var s Ordered[T]
	for _, it := range items {
		if s.Has(it) {
			continue
		}
		s = s.Add(it)
	}
	return s
}

// Has reports membership.
func (s Ordered[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of members.
func (s Ordered[T]) Len() int {
	return len(s.items)
}

// Empty reports whether the set has no members.
func (s Ordered[T]) Empty() bool {
	return len(s.items) == 0
}

// Items returns a copy of the members in insertion order.
func (s Ordered[T]) Items() []T {
	if len(s.items) == 0 {
		return []T{}
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Add returns a set containing v. Adding an existing member returns s unchanged.
func (s Ordered[T]) Add(v T) Ordered[T] {
	if s.Has(v) {
		return s
	}
	items := make([]T, len(s.items), len(s.items)+1)
	copy(items, s.items)
	items = append(items, v)

	index := make(map[T]struct{}, len(items))
	for k := range s.index {
		index[k] = struct{}{}
	}
	index[v] = struct{}{}
	return Ordered[T]{items: items, index: index}
}

// Remove returns a set without v. Removing an absent value returns s unchanged.
func (s Ordered[T]) Remove(v T) Ordered[T] {
	if !s.Has(v) {
		return s
	}
	var out Ordered[T]
	for _, it := range s.items {
		if it != v {
			out = out.Add(it)
		}
	}
	return out
}

// Toggle adds v when absent and removes it when present.
func (s Ordered[T]) Toggle(v T) Ordered[T] {
	if s.Has(v) {
		return s.Remove(v)
	}
	return s.Add(v)
}

// Intersects reports whether any member of other is also in s.
func (s Ordered[T]) Intersects(other Ordered[T]) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for _, it := range small.items {
		if large.Has(it) {
			return true
		}
	}
	return false
}

// IntersectsAny reports whether any of values is a member.
func (s Ordered[T]) IntersectsAny(values []T) bool {
	for _, v := range values {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold the same members in the same order.
func (s Ordered[T]) Equal(other Ordered[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := range s.items {
		if s.items[i] != other.items[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the members as an array in insertion order.
func (s Ordered[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

// UnmarshalJSON accepts an array (or null). Repeated values collapse into one member.
func (s *Ordered[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = Of(items...)
	return nil
}
