package random

import (
	"errors"
	"fmt"
	"sort"
)

// Weighted pairs a candidate value with its relative weight
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedTable holds the cumulative distribution of a set of weighted
// options. Weights are relative and need not sum to one.
type WeightedTable[T any] struct {
	values     []T
	cumulative []float64
	total      float64
}

// NewWeightedTable builds a table from options. An empty option list, a
// negative weight or a zero total weight is rejected.
func NewWeightedTable[T any](options ...Weighted[T]) (*WeightedTable[T], error) {
	if len(options) == 0 {
		return nil, errors.New("weighted table needs at least one option")
	}
	t := &WeightedTable[T]{
		values:     make([]T, 0, len(options)),
		cumulative: make([]float64, 0, len(options)),
	}
	for i, o := range options {
		if o.Weight < 0 {
			return nil, fmt.Errorf("option %d has negative weight %v", i, o.Weight)
		}
		t.total += o.Weight
		t.values = append(t.values, o.Value)
		t.cumulative = append(t.cumulative, t.total)
	}
	if t.total <= 0 {
		return nil, errors.New("weighted table total weight must be positive")
	}
	return t, nil
}

// MustWeighted is NewWeightedTable for static tables; it panics on bad input
func MustWeighted[T any](options ...Weighted[T]) *WeightedTable[T] {
	t, err := NewWeightedTable(options...)
	if err != nil {
		panic("random: " + err.Error())
	}
	return t
}

// Pick draws one value with a single uniform draw on the cumulative weights
func (t *WeightedTable[T]) Pick(s *Source) T {
	x := s.r.Float64() * t.total
	i := sort.Search(len(t.cumulative), func(i int) bool { return t.cumulative[i] > x })
	if i == len(t.values) {
		i = len(t.values) - 1
	}
	return t.values[i]
}

// Len returns the number of options
func (t *WeightedTable[T]) Len() int {
	return len(t.values)
}
