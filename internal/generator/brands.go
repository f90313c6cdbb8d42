package generator

import (
	"github.com/amoylab/toolshop-datagen/internal/catalog"
	"github.com/amoylab/toolshop-datagen/internal/identity"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/random"
)

// Brands generates count brands: the curated real brands in order, then
// fictional "<Stem><suffix> Tools" names. Slugs are unique.
func Brands(env *Env, count int) ([]model.Brand, []BrandRef) {
	brands := make([]model.Brand, 0, count)
	refs := make([]BrandRef, 0, count)
	slugs := identity.SlugSet{}

	for i := 0; i < count; i++ {
		var name string
		if i < len(catalog.Brands) {
			name = catalog.Brands[i]
		} else {
			name = random.Pick(env.Rand, catalog.BrandStems) + random.Pick(env.Rand, catalog.BrandSuffixes) + " Tools"
		}
		b := model.Brand{
			ID:   env.IDs.NewID(),
			Name: name,
			Slug: env.IDs.Slug(name, slugs),
		}
		b.CreatedAt, b.UpdatedAt = env.stamps(env.yearsBack(2))
		brands = append(brands, b)
		refs = append(refs, BrandRef{ID: b.ID, Name: b.Name})
	}
	return brands, refs
}
