// Package generator produces the rows of every Toolshop table. Generators
// run in dependency order on one goroutine and draw all randomness from the
// Env's seeded source, so a fixed seed and configuration give fixed output.
package generator

import (
	"time"

	"github.com/amoylab/toolshop-datagen/internal/common/config"
	"github.com/amoylab/toolshop-datagen/internal/identity"
	"github.com/amoylab/toolshop-datagen/internal/random"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Env is the shared state of one generation run
type Env struct {
	Rand   *random.Source
	IDs    *identity.Allocator
	Anchor time.Time
	Cfg    *config.GeneratorConfig
	Logger *zap.Logger
}

// NewEnv creates the run environment for cfg anchored at anchor. The
// allocator draws its entropy from the same seeded source.
func NewEnv(cfg *config.GeneratorConfig, anchor time.Time, logger *zap.Logger) *Env {
	if logger == nil {
		logger = zap.NewNop()
	}
	src := random.New(cfg.RandomSeed)
	return &Env{
		Rand:   src,
		IDs:    identity.NewAllocator(src, anchor),
		Anchor: anchor,
		Cfg:    cfg,
		Logger: logger,
	}
}

// stamps returns a created_at drawn from [from, anchor] and an updated_at
// drawn from [created_at, anchor]
func (e *Env) stamps(from time.Time) (time.Time, time.Time) {
	created := e.Rand.TimeBetween(from, e.Anchor)
	return created, e.Rand.TimeBetween(created, e.Anchor)
}

// yearsBack returns the anchor moved n years into the past
func (e *Env) yearsBack(n int) time.Time {
	return e.Anchor.AddDate(-n, 0, 0)
}

// CategoryRef is the projection of a category products attach to
type CategoryRef struct {
	ID   string
	Name string
}

// BrandRef is the projection of a brand used in product names
type BrandRef struct {
	ID   string
	Name string
}

// ProductRef is the projection of a product invoice items need
type ProductRef struct {
	ID    string
	Price decimal.Decimal
}

func ptr[T any](v T) *T {
	return &v
}
