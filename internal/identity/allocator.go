// Package identity allocates primary keys and slugs for generated rows.
package identity

import (
	"io"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDLength is the length of every identifier produced by an Allocator
const IDLength = ulid.EncodedSize

// SlugSet records the slugs already taken within one entity type
type SlugSet map[string]struct{}

// Has reports whether slug is taken
func (s SlugSet) Has(slug string) bool {
	_, ok := s[slug]
	return ok
}

// Allocator produces ULID identifiers that sort by allocation order. The
// timestamp part starts at the run anchor and advances one millisecond per
// allocation; the random part comes from the run's seeded entropy.
type Allocator struct {
	entropy io.Reader
	next    uint64
	seen    map[string]struct{}
}

// NewAllocator creates an allocator anchored at anchor
func NewAllocator(entropy io.Reader, anchor time.Time) *Allocator {
	return &Allocator{
		entropy: entropy,
		next:    ulid.Timestamp(anchor),
		seen:    make(map[string]struct{}),
	}
}

// NewID returns the next identifier. A collision with an earlier id
// regenerates the random suffix.
func (a *Allocator) NewID() string {
	ms := a.next
	a.next++
	for {
		id, err := ulid.New(ms, a.entropy)
		if err != nil {
			// the entropy source never fails and ms is far below the ULID limit
			panic("identity: " + err.Error())
		}
		s := id.String()
		if _, dup := a.seen[s]; dup {
			continue
		}
		a.seen[s] = struct{}{}
		return s
	}
}

// Allocated returns the number of identifiers handed out
func (a *Allocator) Allocated() int {
	return len(a.seen)
}

// Slug returns the slug of name made unique against used by appending -2,
// -3, ... and registers the result in used.
func (a *Allocator) Slug(name string, used SlugSet) string {
	return UniqueSlug(name, used)
}

// UniqueSlug is the allocator-independent form of Allocator.Slug
func UniqueSlug(name string, used SlugSet) string {
	base := Slugify(name)
	slug := base
	for n := 2; used.Has(slug); n++ {
		slug = base + "-" + strconv.Itoa(n)
	}
	used[slug] = struct{}{}
	return slug
}
