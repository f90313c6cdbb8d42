package catalog

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyNamesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, root := range Taxonomy {
		assert.False(t, seen[root.Name], "duplicate %q", root.Name)
		seen[root.Name] = true
		assert.NotEmpty(t, root.Children, root.Name)
		for _, child := range root.Children {
			assert.False(t, seen[child], "duplicate %q", child)
			seen[child] = true
		}
	}
	assert.Len(t, ChildNames(), len(seen)-len(Taxonomy))
}

func TestModifiersAreDistinct(t *testing.T) {
	mods := Modifiers()
	seen := map[string]bool{}
	for _, m := range mods {
		assert.False(t, seen[m], "duplicate %q", m)
		seen[m] = true
	}
	assert.Len(t, mods, len(SizeModifiers)+len(MaterialModifiers)+len(ApplicationModifiers))
}

func TestDescriptionTemplatesParse(t *testing.T) {
	for _, src := range DescriptionTemplates {
		tmpl, err := template.New("d").Option("missingkey=error").Parse(src)
		require.NoError(t, err)
		require.NoError(t, tmpl.Execute(&discard{}, DescriptionData{"drill", "plumbing", "steel", "magnetic tip"}))
	}
}

func TestCountriesHaveCities(t *testing.T) {
	for _, c := range Countries {
		assert.NotEmpty(t, c.Cities, c.Code)
		assert.NotEmpty(t, c.Postcode, c.Code)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
