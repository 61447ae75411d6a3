// Package types holds small generic containers shared across packages.
package types

// Set is a hash set for comparable values backed by map[T]struct{}.
//
// Set is mutable and not safe for concurrent use.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set containing the given values.
func NewSet[T comparable](values ...T) Set[T] {
	set := make(Set[T], len(values))
	set.Add(values...)
	return set
}

// Add inserts one or more values into the set.
func (s Set[T]) Add(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Has reports whether v is a member of the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// AddIfAbsent inserts v and reports whether it was not already present.
//
// It is the building block for order-preserving de-duplication:
//
//	seen := types.NewSet[string]()
//	for _, sig := range signatures {
//	    if seen.AddIfAbsent(sig) {
//	        unique = append(unique, sig)
//	    }
//	}
func (s Set[T]) AddIfAbsent(v T) bool {
	if s.Has(v) {
		return false
	}

	s[v] = struct{}{}
	return true
}
