package report

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
)

const markdown = `# Toolshop Data Generation Report
{{ with .Run }}
{{- if .Seed }}
- Seed: {{ .Seed }}
{{- end }}
{{- if .Anchor }}
- Reference time: {{ .Anchor }}
{{- end }}
{{- if .OutputDir }}
- Output directory: {{ .OutputDir }}
{{- end }}
{{- end }}

## Tables

| Table | Rows |
|-------|-----:|
{{- range .Tables }}
| {{ .Table }} | {{ comma .Rows }} |
{{- end }}
| **total** | **{{ comma .TotalRows }}** |

{{ template "shares" dict "Title" "User roles" "Rows" .Roles }}
{{ template "shares" dict "Title" "Payment methods" "Rows" .Methods }}
{{ template "shares" dict "Title" "Payment statuses" "Rows" .Statuses }}
## Catalog

- Categories: {{ comma .Categories.Roots }} roots, {{ comma .Categories.Children }} children
- Price: min {{ money .Prices.Min }}, median {{ money .Prices.Median }}, mean {{ money .Prices.Mean }}, max {{ money .Prices.Max }}
- In stock: {{ comma .InStock.Count }} ({{ pct .InStock.Percent }})

## Revenue

- Invoiced: {{ money .Revenue.Invoiced }}
- Paid: {{ money .Revenue.Paid }}
- Line items: {{ comma .Revenue.Items }} ({{ comma .Revenue.Units }} units)
{{- if .Files }}

## Files

| File | Rows | Size |
|------|-----:|-----:|
{{- range .Files }}
| {{ .Name }} | {{ comma .Rows }} | {{ bytes .Size }} |
{{- end }}
{{- end }}
{{ define "shares" }}## {{ .Title }}

| Value | Count | Share |
|-------|------:|------:|
{{- range .Rows }}
| {{ .Name | lower }} | {{ comma .Count }} | {{ pct .Percent }} |
{{- end }}
{{ end }}`

var reportTemplate = template.Must(template.New("report").Funcs(funcMap()).Parse(markdown))

// Render renders s as Markdown
func Render(s Summary) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders s into path
func Write(path string, s Summary) error {
	out, err := Render(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errorx.NewIOError("create directory", filepath.Dir(path), err)
	}
	return errorx.NewIOError("write", path, os.WriteFile(path, []byte(out), 0o644))
}
