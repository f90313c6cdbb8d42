package generator

import (
	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/random"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var minUnitPrice = decimal.New(1, -2)

// InvoiceItems generates the line items of every invoice and then
// overwrites each invoice total with the sum of its items. The run never
// produces more than num_invoice_items items, and every invoice gets at
// least min_invoice_items.
func InvoiceItems(env *Env, invoices []model.Invoice, products []ProductRef) ([]model.InvoiceItem, error) {
	if len(products) == 0 {
		return nil, errorx.NewConstraintError(model.TableInvoiceItems, "product_id", "no products to invoice")
	}
	cfg := env.Cfg
	budget := cfg.NumInvoiceItems
	if need := len(invoices) * cfg.MinInvoiceItems; budget < need {
		return nil, errorx.NewConstraintError(model.TableInvoiceItems, "item budget",
			"%d items cannot give %d invoices %d items each", budget, len(invoices), cfg.MinInvoiceItems)
	}

	counts := itemCounts(env.Rand, len(invoices), budget, cfg.MinInvoiceItems, cfg.MaxInvoiceItems)
	items := make([]model.InvoiceItem, 0, budget)
	for i := range invoices {
		inv := &invoices[i]
		for j := 0; j < counts[i]; j++ {
			product := random.Pick(env.Rand, products)
			item := model.InvoiceItem{
				ID:        env.IDs.NewID(),
				InvoiceID: inv.ID,
				ProductID: product.ID,
				Quantity:  env.Rand.IntBetween(cfg.MinQuantityPerItem, cfg.MaxQuantityPerItem),
				UnitPrice: UnitPrice(product.Price, env.Rand.Float(1-cfg.PriceVariation, 1+cfg.PriceVariation)),
			}
			item.CreatedAt, item.UpdatedAt = inv.CreatedAt, inv.UpdatedAt
			items = append(items, item)
		}
	}

	ApplyTotals(invoices, items)
	env.Logger.Debug("generated invoice items", zap.Int("count", len(items)), zap.Int("budget", cfg.NumInvoiceItems))
	return items, nil
}

// itemCounts draws a count in [lo, hi] for each of n invoices. When the
// draws exceed budget, single items are removed from random invoices still
// above lo until the sum fits, so the cut is spread over all invoices.
// budget must be at least n*lo.
func itemCounts(src *random.Source, n, budget, lo, hi int) []int {
	counts := make([]int, n)
	total := 0
	for i := range counts {
		counts[i] = src.IntBetween(lo, hi)
		total += counts[i]
	}
	if total <= budget {
		return counts
	}

	trimmable := make([]int, 0, n)
	for i, c := range counts {
		if c > lo {
			trimmable = append(trimmable, i)
		}
	}
	for ; total > budget; total-- {
		k := src.IntBetween(0, len(trimmable)-1)
		i := trimmable[k]
		counts[i]--
		if counts[i] == lo {
			trimmable[k] = trimmable[len(trimmable)-1]
			trimmable = trimmable[:len(trimmable)-1]
		}
	}
	return counts
}

// UnitPrice applies factor to price and rounds to cents, never below 0.01
func UnitPrice(price decimal.Decimal, factor float64) decimal.Decimal {
	unit := price.Mul(decimal.NewFromFloat(factor)).Round(2)
	if unit.LessThan(minUnitPrice) {
		return minUnitPrice
	}
	return unit
}

// Totals sums quantity x unit_price per invoice id, rounded to cents
func Totals(items []model.InvoiceItem) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, item := range items {
		totals[item.InvoiceID] = totals[item.InvoiceID].Add(item.Subtotal())
	}
	for id, t := range totals {
		totals[id] = t.Round(2)
	}
	return totals
}

// ApplyTotals overwrites every invoice total with the sum of its items.
// Invoices without items total 0.00.
func ApplyTotals(invoices []model.Invoice, items []model.InvoiceItem) {
	totals := Totals(items)
	for i := range invoices {
		invoices[i].Total = totals[invoices[i].ID].Round(2)
	}
}
