package report

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

func funcMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["comma"] = func(n int) string { return humanize.Comma(int64(n)) }
	funcs["bytes"] = humanize.Bytes
	funcs["money"] = money
	funcs["pct"] = pct
	return funcs
}

// money renders d with two decimals and thousands separators
func money(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// pct renders a percentage rounded to one decimal, dropping a trailing ".0"
func pct(f float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(f, 'f', 1, 64), ".0") + "%"
}
