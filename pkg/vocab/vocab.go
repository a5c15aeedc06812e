// Package vocab holds the closed label sets used to type nodes and edges of
// a linguistic graph. Every vocabulary is a string type whose values are the
// raw labels stored as graph attributes, and every vocabulary has a Parse
// constructor that rejects labels outside the set.
package vocab

import (
	"errors"
	"fmt"
)

// ErrInvalidLabel is returned (wrapped in an *InvalidLabelError) when a raw
// label is not a member of its vocabulary.
var ErrInvalidLabel = errors.New("invalid label")

// InvalidLabelError reports which vocabulary rejected which raw value.
type InvalidLabelError struct {
	Vocabulary string
	Value      string
}

func (e *InvalidLabelError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid %s", ErrInvalidLabel, e.Value, e.Vocabulary)
}

func (e *InvalidLabelError) Unwrap() error {
	return ErrInvalidLabel
}

type labelSet[T ~string] struct {
	name    string
	ordered []T
	members map[T]struct{}
}

func newLabelSet[T ~string](name string, values ...T) labelSet[T] {
	members := make(map[T]struct{}, len(values))
	for _, v := range values {
		members[v] = struct{}{}
	}
	return labelSet[T]{name: name, ordered: values, members: members}
}

func (s labelSet[T]) parse(raw string) (T, error) {
	v := T(raw)
	if _, ok := s.members[v]; !ok {
		var zero T
		return zero, &InvalidLabelError{Vocabulary: s.name, Value: raw}
	}
	return v, nil
}

func (s labelSet[T]) contains(v T) bool {
	_, ok := s.members[v]
	return ok
}

func (s labelSet[T]) values() []T {
	out := make([]T, len(s.ordered))
	copy(out, s.ordered)
	return out
}
