package config

import (
	"math"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/common/errorx"

	"golang.org/x/crypto/bcrypt"
)

// Validate checks every generator option and returns a
// *errorx.ConfigurationError naming each rejected field.
func (c *GeneratorConfig) Validate() error {
	e := &errorx.ConfigurationError{}

	counts := []struct {
		name  string
		value int
	}{
		{"num_users", c.NumUsers},
		{"num_categories", c.NumCategories},
		{"num_brands", c.NumBrands},
		{"num_product_images", c.NumProductImages},
		{"num_products", c.NumProducts},
		{"num_favorites", c.NumFavorites},
		{"num_invoices", c.NumInvoices},
		{"num_invoice_items", c.NumInvoiceItems},
		{"num_payments", c.NumPayments},
		{"num_root_categories", c.NumRootCategories},
	}
	for _, cnt := range counts {
		if cnt.value <= 0 {
			e.Add(cnt.name, "must be a positive integer, got %d", cnt.value)
		}
	}

	probabilities := []struct {
		name  string
		value float64
	}{
		{"admin_totp_probability", c.AdminTOTPProbability},
		{"user_totp_probability", c.UserTOTPProbability},
		{"user_enabled_probability", c.UserEnabledProbability},
		{"social_provider_probability", c.SocialProviderProbability},
		{"password_probability", c.PasswordProbability},
		{"product_in_stock_probability", c.ProductInStockProbability},
		{"product_location_offer_probability", c.ProductLocationOfferProbability},
		{"product_rental_probability", c.ProductRentalProbability},
	}
	for _, p := range probabilities {
		if math.IsNaN(p.value) || p.value < 0 || p.value > 1 {
			e.Add(p.name, "must be within [0,1], got %v", p.value)
		}
	}

	if c.MinPrice <= 0 {
		e.Add("min_price", "must be positive, got %v", c.MinPrice)
	}
	if c.MinPrice > c.MaxPrice {
		e.Add("min_price", "must be <= max_price (%v > %v)", c.MinPrice, c.MaxPrice)
	} else if c.MinPriceDecimal().Shift(2).Ceil().GreaterThan(c.MaxPriceDecimal().Shift(2).Floor()) {
		e.Add("max_price", "no whole-cent price lies within [%v, %v]", c.MinPrice, c.MaxPrice)
	}
	if c.MinStock < 0 {
		e.Add("min_stock", "must not be negative, got %d", c.MinStock)
	}
	if c.MinStock > c.MaxStock {
		e.Add("min_stock", "must be <= max_stock (%d > %d)", c.MinStock, c.MaxStock)
	}
	if c.MinInvoiceItems < 1 {
		e.Add("min_invoice_items", "must be at least 1, got %d", c.MinInvoiceItems)
	}
	if c.MinInvoiceItems > c.MaxInvoiceItems {
		e.Add("min_invoice_items", "must be <= max_invoice_items (%d > %d)", c.MinInvoiceItems, c.MaxInvoiceItems)
	}
	if c.MinQuantityPerItem < 1 {
		e.Add("min_quantity_per_item", "must be at least 1, got %d", c.MinQuantityPerItem)
	}
	if c.MinQuantityPerItem > c.MaxQuantityPerItem {
		e.Add("min_quantity_per_item", "must be <= max_quantity_per_item (%d > %d)", c.MinQuantityPerItem, c.MaxQuantityPerItem)
	}
	if math.IsNaN(c.PriceVariation) || c.PriceVariation < 0 || c.PriceVariation >= 1 {
		e.Add("price_variation", "must be within [0,1), got %v", c.PriceVariation)
	}
	if c.NumInvoices > 0 && c.MinInvoiceItems > 0 && c.NumInvoiceItems < c.NumInvoices*c.MinInvoiceItems {
		e.Add("num_invoice_items", "must allow min_invoice_items per invoice (%d < %d x %d)",
			c.NumInvoiceItems, c.NumInvoices, c.MinInvoiceItems)
	}

	if c.PasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(c.PasswordHash)); err != nil {
			e.Add("password_hash", "not a bcrypt hash: %v", err)
		}
	}
	if c.OutputDirectory == "" {
		e.Add("output_directory", "must not be empty")
	}
	if _, err := c.Anchor(time.Now()); err != nil {
		e.Add("reference_time", "unrecognised time %q", c.ReferenceTime)
	}

	if e.HasErrors() {
		return e
	}
	return nil
}
