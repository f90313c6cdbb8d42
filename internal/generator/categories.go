package generator

import (
	"github.com/amoylab/toolshop-datagen/internal/catalog"
	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/identity"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/random"

	"go.uber.org/zap"
)

// childPool hands out the child names of one root: first the names the
// taxonomy defines, then modifier variations in seeded order.
type childPool struct {
	defined    []string
	variations []string
	shuffled   bool
	next       int
}

func newChildPool(root catalog.Root, modifiers []string) *childPool {
	p := &childPool{defined: root.Children}
	for _, child := range root.Children {
		for _, mod := range modifiers {
			p.variations = append(p.variations, mod+" "+child)
		}
	}
	return p
}

func (p *childPool) size() int {
	return len(p.defined) + len(p.variations)
}

func (p *childPool) take(src *random.Source) (string, bool) {
	if p.next < len(p.defined) {
		p.next++
		return p.defined[p.next-1], true
	}
	i := p.next - len(p.defined)
	if i >= len(p.variations) {
		return "", false
	}
	if !p.shuffled {
		random.Shuffle(src, p.variations)
		p.shuffled = true
	}
	p.next++
	return p.variations[i], true
}

// Categories generates a two-level tree of count categories. Roots come
// first in taxonomy order; children are spread round-robin over the roots.
// The returned refs are the leaves, the categories products attach to.
func Categories(env *Env, count int) ([]model.Category, []CategoryRef, error) {
	roots := env.Cfg.NumRootCategories
	if roots <= 0 {
		return nil, nil, errorx.NewConstraintError(model.TableCategories, "root pool", "at least one root category is required")
	}
	if roots > count {
		roots = count
	}
	if roots > len(catalog.Taxonomy) {
		return nil, nil, errorx.NewConstraintError(model.TableCategories, "root pool",
			"%d root categories requested, taxonomy defines %d", roots, len(catalog.Taxonomy))
	}

	modifiers := catalog.Modifiers()
	pools := make([]*childPool, roots)
	capacity := 0
	for i := range pools {
		pools[i] = newChildPool(catalog.Taxonomy[i], modifiers)
		capacity += pools[i].size()
	}
	children := count - roots
	if children > capacity {
		return nil, nil, errorx.NewConstraintError(model.TableCategories, "subcategory pool",
			"%d subcategories requested, %d roots can supply %d", children, roots, capacity)
	}

	categories := make([]model.Category, 0, count)
	slugs := identity.SlugSet{}
	hasChild := make([]bool, roots)

	for i := 0; i < roots; i++ {
		categories = append(categories, newCategory(env, catalog.Taxonomy[i].Name, nil, slugs))
	}
	for k, r := 0, 0; k < children; r = (r + 1) % roots {
		name, ok := pools[r].take(env.Rand)
		if !ok {
			continue
		}
		parent := categories[r].ID
		categories = append(categories, newCategory(env, name, &parent, slugs))
		hasChild[r] = true
		k++
	}

	var leaves []CategoryRef
	for i, c := range categories {
		if i < roots && hasChild[i] {
			continue
		}
		leaves = append(leaves, CategoryRef{ID: c.ID, Name: c.Name})
	}

	env.Logger.Debug("generated categories",
		zap.Int("roots", roots), zap.Int("children", children), zap.Int("leaves", len(leaves)))
	return categories, leaves, nil
}

func newCategory(env *Env, name string, parent *string, slugs identity.SlugSet) model.Category {
	c := model.Category{
		ID:       env.IDs.NewID(),
		Name:     name,
		Slug:     env.IDs.Slug(name, slugs),
		ParentID: parent,
	}
	c.CreatedAt, c.UpdatedAt = env.stamps(env.yearsBack(2))
	return c
}
