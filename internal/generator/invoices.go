package generator

import (
	"fmt"

	"github.com/amoylab/toolshop-datagen/internal/catalog"
	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/model"
	"github.com/amoylab/toolshop-datagen/internal/random"

	"github.com/shopspring/decimal"
)

// InvoiceNumber formats the year-coded invoice number of sequence seq
func InvoiceNumber(year, seq int) string {
	return fmt.Sprintf("INV-%d-%06d", year, seq)
}

// Invoices generates count invoices for random users. Totals stay zero until
// InvoiceItems recomputes them.
func Invoices(env *Env, count int, userIDs []string) ([]model.Invoice, error) {
	if len(userIDs) == 0 {
		return nil, errorx.NewConstraintError(model.TableInvoices, "user_id", "no users to bill")
	}
	invoices := make([]model.Invoice, 0, count)

	for i := 0; i < count; i++ {
		date := env.Rand.TimeBetween(env.yearsBack(1), env.Anchor)
		country := random.Pick(env.Rand, catalog.Countries)

		inv := model.Invoice{
			ID:             env.IDs.NewID(),
			InvoiceNumber:  InvoiceNumber(date.Year(), i+1),
			InvoiceDate:    date,
			UserID:         random.Pick(env.Rand, userIDs),
			BillingAddress: streetAddress(env),
			BillingCity:    random.Pick(env.Rand, country.Cities),
			BillingCountry: country.Code,
			Total:          decimal.Zero,
		}
		if len(country.States) > 0 {
			inv.BillingState = ptr(random.Pick(env.Rand, country.States))
		}
		inv.BillingPostcode = ptr(postcode(env, country.Postcode))
		inv.CreatedAt = date
		inv.UpdatedAt = env.Rand.TimeBetween(date, env.Anchor)

		invoices = append(invoices, inv)
	}
	return invoices, nil
}
