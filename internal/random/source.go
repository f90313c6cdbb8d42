// Package random wraps every randomness decision of a generation run behind a
// single seeded source so that identical call sequences produce identical data.
package random

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits       = "0123456789"
	hexDigits    = "0123456789abcdef"
)

// Source is a deterministic pseudo-random source. It is not safe for
// concurrent use; generation runs on a single goroutine.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New creates a source seeded with seed
func New(seed int64) *Source {
	s := uint64(seed)
	return &Source{
		seed: seed,
		r:    rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the source was created with
func (s *Source) Seed() int64 {
	return s.seed
}

// IntBetween returns a uniform integer in [min, max]
func (s *Source) IntBetween(min, max int) int {
	if min > max {
		panic(fmt.Sprintf("random: IntBetween min %d > max %d", min, max))
	}
	return min + s.r.IntN(max-min+1)
}

// Int64Between returns a uniform integer in [min, max]
func (s *Source) Int64Between(min, max int64) int64 {
	if min > max {
		panic(fmt.Sprintf("random: Int64Between min %d > max %d", min, max))
	}
	return min + s.r.Int64N(max-min+1)
}

// Float returns a uniform float in [min, max)
func (s *Source) Float(min, max float64) float64 {
	if min > max {
		panic(fmt.Sprintf("random: Float min %v > max %v", min, max))
	}
	return min + s.r.Float64()*(max-min)
}

// Decimal returns a uniform value with the given number of decimal places
// inside [min, max]. Only values representable at that precision are drawn,
// so the result never needs rounding back into range.
func (s *Source) Decimal(min, max decimal.Decimal, places int32) decimal.Decimal {
	if min.GreaterThan(max) {
		panic(fmt.Sprintf("random: Decimal min %s > max %s", min, max))
	}
	lo := min.Shift(places).Ceil().IntPart()
	hi := max.Shift(places).Floor().IntPart()
	if lo > hi {
		panic(fmt.Sprintf("random: no value with %d decimals in [%s, %s]", places, min, max))
	}
	return decimal.New(s.Int64Between(lo, hi), -places)
}

// Bool returns true with probability p
func (s *Source) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

// TimeBetween returns a uniform instant in [start, end] truncated to seconds
func (s *Source) TimeBetween(start, end time.Time) time.Time {
	lo := start.Unix()
	if start.Nanosecond() > 0 {
		lo++
	}
	hi := end.Unix()
	if lo > hi {
		panic(fmt.Sprintf("random: TimeBetween start %s after end %s", start, end))
	}
	return time.Unix(s.Int64Between(lo, hi), 0).In(start.Location())
}

// Alphanumeric returns n characters drawn from A-Z0-9
func (s *Source) Alphanumeric(n int) string {
	return s.fromAlphabet(alphanumeric, n)
}

// Digits returns n decimal digits
func (s *Source) Digits(n int) string {
	return s.fromAlphabet(digits, n)
}

// Hex returns n lowercase hex characters
func (s *Source) Hex(n int) string {
	return s.fromAlphabet(hexDigits, n)
}

// Letters returns n uppercase letters
func (s *Source) Letters(n int) string {
	return s.fromAlphabet(alphanumeric[:26], n)
}

func (s *Source) fromAlphabet(alphabet string, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[s.r.IntN(len(alphabet))])
	}
	return sb.String()
}

// Read fills p with pseudo-random bytes. It never fails, which lets the
// source act as entropy for identifier and UUID generation.
func (s *Source) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := s.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// Pick returns a uniform element of list
func Pick[T any](s *Source, list []T) T {
	if len(list) == 0 {
		panic("random: Pick from empty list")
	}
	return list[s.r.IntN(len(list))]
}

// PickN returns n distinct elements of list in draw order
func PickN[T any](s *Source, list []T, n int) []T {
	if n < 0 || n > len(list) {
		panic(fmt.Sprintf("random: PickN %d from list of %d", n, len(list)))
	}
	pool := make([]T, len(list))
	copy(pool, list)
	// partial Fisher-Yates: the first n slots hold the sample
	for i := 0; i < n; i++ {
		j := i + s.r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Shuffle permutes list in place
func Shuffle[T any](s *Source, list []T) {
	s.r.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
}
