package generator

import (
	"fmt"
	"strings"

	"github.com/amoylab/toolshop-datagen/internal/catalog"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/random"
)

// ProductImages generates count stock photo records. Each image is themed
// on a taxonomy child or brand name.
func ProductImages(env *Env, count int) ([]model.ProductImage, []string) {
	tokens := append(catalog.ChildNames(), catalog.Brands...)
	images := make([]model.ProductImage, 0, count)
	ids := make([]string, 0, count)

	for i := 0; i < count; i++ {
		token := random.Pick(env.Rand, tokens)
		source := random.Pick(env.Rand, catalog.PhotoSources)
		photographer := random.Pick(env.Rand, catalog.Photographers)
		fileName := imageFileName(token,
			random.Pick(env.Rand, catalog.ImageVariants),
			random.Pick(env.Rand, catalog.ImageExtensions))

		img := model.ProductImage{
			ID:         env.IDs.NewID(),
			ByName:     photographer,
			ByURL:      fmt.Sprintf("https://%s/@%s", source.Domain, strings.ToLower(strings.ReplaceAll(photographer, " ", ""))),
			SourceName: source.Name,
			SourceURL:  fmt.Sprintf("https://images.%s/photos/%d/%s", source.Domain, env.Rand.IntBetween(100000, 9999999), fileName),
			FileName:   fileName,
			Title:      token + " - Professional Tool Photography",
		}
		img.CreatedAt, img.UpdatedAt = env.stamps(env.yearsBack(2))
		images = append(images, img)
		ids = append(ids, img.ID)
	}
	return images, ids
}

// imageFileName lowercases token, maps spaces and hyphens to underscores,
// drops everything else that is not alphanumeric and adds variant and ext
func imageFileName(token, variant, ext string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(token) {
		switch {
		case r == ' ' || r == '-':
			sb.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		}
	}
	return sb.String() + "_" + variant + ext
}
