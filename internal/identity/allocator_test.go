package identity

import (
	"bytes"
	"sort"
	"testing"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestAllocator_NewID(t *testing.T) {
	a := NewAllocator(random.New(42), anchor)

	ids := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		id := a.NewID()
		require.Len(t, id, IDLength)
		ids = append(ids, id)
	}
	assert.Equal(t, 500, a.Allocated())
	assert.True(t, sort.StringsAreSorted(ids), "ids must sort by allocation order")

	b := NewAllocator(random.New(42), anchor)
	for i := 0; i < 500; i++ {
		assert.Equal(t, ids[i], b.NewID())
	}
}

// repeatingReader yields the same suffix twice before changing it.
type repeatingReader struct{ calls int }

func (r *repeatingReader) Read(p []byte) (int, error) {
	r.calls++
	fill := byte(0)
	if r.calls > 2 {
		fill = byte(r.calls)
	}
	copy(p, bytes.Repeat([]byte{fill}, len(p)))
	return len(p), nil
}

func TestAllocator_CollisionRegeneratesSuffix(t *testing.T) {
	r := &repeatingReader{}
	a := NewAllocator(r, anchor)
	first := a.NewID()
	// force the same timestamp again
	a.next--
	second := a.NewID()
	assert.Equal(t, 3, r.calls)
	assert.NotEqual(t, first, second)
	assert.Equal(t, first[:10], second[:10], "timestamp part is kept")
}

func TestUniqueSlug(t *testing.T) {
	used := SlugSet{}
	a := NewAllocator(random.New(1), anchor)

	assert.Equal(t, "hand-tools", a.Slug("Hand Tools", used))
	assert.Equal(t, "hand-tools-2", a.Slug("Hand  Tools", used))
	assert.Equal(t, "hand-tools-3", a.Slug("hand-tools", used))
	assert.True(t, used.Has("hand-tools-3"))
	assert.Len(t, used, 3)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Black & Decker":       "black-decker",
		"Snap-on":              "snap-on",
		"  Power Tools  ":      "power-tools",
		"Métabo Ünïcode":       "metabo-unicode",
		"--Leading--trailing-": "leading-trailing",
		"S.K. Tools":           "sk-tools",
		"!!!":                  "untitled",
		"":                     "untitled",
		"Tab\tand\nnewline":    "tab-and-newline",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}
