package generator

import (
	"strings"
	"text/template"

	"github.com/amoylab/toolshop-datagen/internal/catalog"
	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/random"

	"go.uber.org/zap"
)

var descriptionTemplates = func() []*template.Template {
	out := make([]*template.Template, len(catalog.DescriptionTemplates))
	for i, src := range catalog.DescriptionTemplates {
		out[i] = template.Must(template.New("description").Option("missingkey=error").Parse(src))
	}
	return out
}()

// Products generates count products attached to random leaf categories,
// brands and images. Stock is drawn independently of in_stock.
func Products(env *Env, count int, leaves []CategoryRef, brands []BrandRef, imageIDs []string) ([]model.Product, []ProductRef, error) {
	switch {
	case len(leaves) == 0:
		return nil, nil, errorx.NewConstraintError(model.TableProducts, "category_id", "no leaf categories to attach products to")
	case len(brands) == 0:
		return nil, nil, errorx.NewConstraintError(model.TableProducts, "brand_id", "no brands available")
	case len(imageIDs) == 0:
		return nil, nil, errorx.NewConstraintError(model.TableProducts, "product_image_id", "no product images available")
	}

	cfg := env.Cfg
	minPrice, maxPrice := cfg.MinPriceDecimal(), cfg.MaxPriceDecimal()
	products := make([]model.Product, 0, count)
	refs := make([]ProductRef, 0, count)

	for i := 0; i < count; i++ {
		category := random.Pick(env.Rand, leaves)
		brand := random.Pick(env.Rand, brands)

		description, err := productDescription(env, category.Name)
		if err != nil {
			return nil, nil, err
		}
		p := model.Product{
			ID:              env.IDs.NewID(),
			Name:            productName(env, brand.Name, category.Name),
			Description:     description,
			Price:           env.Rand.Decimal(minPrice, maxPrice, 2),
			CategoryID:      category.ID,
			BrandID:         brand.ID,
			ProductImageID:  random.Pick(env.Rand, imageIDs),
			InStock:         env.Rand.Bool(cfg.ProductInStockProbability),
			Stock:           env.Rand.IntBetween(cfg.MinStock, cfg.MaxStock),
			IsLocationOffer: env.Rand.Bool(cfg.ProductLocationOfferProbability),
			IsRental:        env.Rand.Bool(cfg.ProductRentalProbability),
		}
		p.CreatedAt, p.UpdatedAt = env.stamps(env.yearsBack(2))

		products = append(products, p)
		refs = append(refs, ProductRef{ID: p.ID, Price: p.Price})
	}

	env.Logger.Debug("generated products", zap.Int("count", len(products)))
	return products, refs, nil
}

// productName is brand, optional size and material modifiers, category and
// a model token such as "KX-4821"
func productName(env *Env, brand, category string) string {
	parts := []string{brand}
	if env.Rand.Bool(0.30) {
		parts = append(parts, random.Pick(env.Rand, catalog.SizeModifiers))
	}
	if env.Rand.Bool(0.25) {
		parts = append(parts, random.Pick(env.Rand, catalog.MaterialModifiers))
	}
	parts = append(parts, category, env.Rand.Letters(2)+"-"+env.Rand.Digits(4))
	return strings.Join(parts, " ")
}

func productDescription(env *Env, category string) (string, error) {
	tmpl := random.Pick(env.Rand, descriptionTemplates)
	data := catalog.DescriptionData{
		Tool:        strings.ToLower(category),
		Application: random.Pick(env.Rand, catalog.Applications),
		Material:    strings.ToLower(random.Pick(env.Rand, catalog.MaterialModifiers)),
		Feature:     random.Pick(env.Rand, catalog.Features),
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
