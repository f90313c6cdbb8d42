package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPasswordHash is the bcrypt hash of "welcome01" used by the Toolshop seed users
const DefaultPasswordHash = "$2y$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// GeneratorConfig holds every option of a generation run. It is built once,
// validated, and then only read.
type GeneratorConfig struct {
	// Record counts
	NumUsers         int `yaml:"num_users" toml:"num_users"`
	NumCategories    int `yaml:"num_categories" toml:"num_categories"`
	NumBrands        int `yaml:"num_brands" toml:"num_brands"`
	NumProductImages int `yaml:"num_product_images" toml:"num_product_images"`
	NumProducts      int `yaml:"num_products" toml:"num_products"`
	NumFavorites     int `yaml:"num_favorites" toml:"num_favorites"`
	NumInvoices      int `yaml:"num_invoices" toml:"num_invoices"`
	NumInvoiceItems  int `yaml:"num_invoice_items" toml:"num_invoice_items"` // upper bound on line items across all invoices
	NumPayments      int `yaml:"num_payments" toml:"num_payments"`

	// Category hierarchy. At most num_categories roots are created.
	NumRootCategories int `yaml:"num_root_categories" toml:"num_root_categories"`

	// User settings
	AdminTOTPProbability      float64 `yaml:"admin_totp_probability" toml:"admin_totp_probability"`
	UserTOTPProbability       float64 `yaml:"user_totp_probability" toml:"user_totp_probability"`
	UserEnabledProbability    float64 `yaml:"user_enabled_probability" toml:"user_enabled_probability"`
	SocialProviderProbability float64 `yaml:"social_provider_probability" toml:"social_provider_probability"`
	PasswordProbability       float64 `yaml:"password_probability" toml:"password_probability"`
	PasswordHash              string  `yaml:"password_hash" toml:"password_hash"`

	// Product settings
	ProductInStockProbability       float64 `yaml:"product_in_stock_probability" toml:"product_in_stock_probability"`
	ProductLocationOfferProbability float64 `yaml:"product_location_offer_probability" toml:"product_location_offer_probability"`
	ProductRentalProbability        float64 `yaml:"product_rental_probability" toml:"product_rental_probability"`
	MinStock                        int     `yaml:"min_stock" toml:"min_stock"`
	MaxStock                        int     `yaml:"max_stock" toml:"max_stock"`
	MinPrice                        float64 `yaml:"min_price" toml:"min_price"`
	MaxPrice                        float64 `yaml:"max_price" toml:"max_price"`

	// Invoice settings
	MinInvoiceItems    int     `yaml:"min_invoice_items" toml:"min_invoice_items"`
	MaxInvoiceItems    int     `yaml:"max_invoice_items" toml:"max_invoice_items"`
	MinQuantityPerItem int     `yaml:"min_quantity_per_item" toml:"min_quantity_per_item"`
	MaxQuantityPerItem int     `yaml:"max_quantity_per_item" toml:"max_quantity_per_item"`
	PriceVariation     float64 `yaml:"price_variation" toml:"price_variation"` // unit price = price * U[1-v, 1+v]

	// Output
	OutputDirectory string `yaml:"output_directory" toml:"output_directory"`

	// Reproducibility
	RandomSeed int64 `yaml:"random_seed" toml:"random_seed"`
	// ReferenceTime is "now" for every relative date; empty means today at 00:00 UTC
	ReferenceTime string `yaml:"reference_time" toml:"reference_time"`
}

// DefaultGenerator returns the generator defaults
func DefaultGenerator() GeneratorConfig {
	return GeneratorConfig{
		NumUsers:         1000,
		NumCategories:    1000,
		NumBrands:        500,
		NumProductImages: 500,
		NumProducts:      1000,
		NumFavorites:     2000,
		NumInvoices:      800,
		NumInvoiceItems:  1500,
		NumPayments:      800,

		NumRootCategories: 8,

		AdminTOTPProbability:      0.15,
		UserTOTPProbability:       0.02,
		UserEnabledProbability:    0.95,
		SocialProviderProbability: 0.25,
		PasswordProbability:       0.95,
		PasswordHash:              DefaultPasswordHash,

		ProductInStockProbability:       0.85,
		ProductLocationOfferProbability: 0.1,
		ProductRentalProbability:        0.05,
		MinStock:                        0,
		MaxStock:                        1000,
		MinPrice:                        1.99,
		MaxPrice:                        9999.99,

		MinInvoiceItems:    1,
		MaxInvoiceItems:    10,
		MinQuantityPerItem: 1,
		MaxQuantityPerItem: 5,
		PriceVariation:     0.10,

		OutputDirectory: "output",
		RandomSeed:      42,
	}
}

// MinPriceDecimal returns MinPrice as an exact decimal
func (c *GeneratorConfig) MinPriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.MinPrice)
}

// MaxPriceDecimal returns MaxPrice as an exact decimal
func (c *GeneratorConfig) MaxPriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.MaxPrice)
}

var referenceLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Anchor returns the instant every relative date of the run is computed
// from. Without an explicit reference time it is midnight UTC of now's day,
// so runs on the same day with the same seed are byte-identical.
func (c *GeneratorConfig) Anchor(now time.Time) (time.Time, error) {
	if c.ReferenceTime == "" {
		return now.UTC().Truncate(24 * time.Hour), nil
	}
	var lastErr error
	for _, layout := range referenceLayouts {
		t, err := time.ParseInLocation(layout, c.ReferenceTime, time.UTC)
		if err == nil {
			return t.UTC().Truncate(time.Second), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
