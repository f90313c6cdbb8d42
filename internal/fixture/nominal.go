package fixture

import "strings"

// nominals are known-good values accepted by the Toolshop API, per field
var nominals = map[string]string{
	"first_name":     "John",
	"last_name":      "Doe",
	"email":          "john.doe@example.com",
	"password":       "SuperSecure@123",
	"street":         "Test street 98",
	"address":        "Test street 98",
	"city":           "Vienna",
	"state":          "Vienna",
	"country":        "AT",
	"postal_code":    "1234AA",
	"postcode":       "1234AA",
	"phone":          "0987654321",
	"dob":            "1970-01-01",
	"name":           "Combination Pliers",
	"title":          "Combination Pliers",
	"slug":           "combination-pliers",
	"description":    "Durable pliers for everyday use.",
	"price":          "14.15",
	"quantity":       "1",
	"stock":          "10",
	"message":        "This is a test message with enough characters.",
	"subject":        "customer-service",
	"payment_method": "cash-on-delivery",
	"role":           "user",
	"by_name":        "Jane Smith",
	"by_url":         "https://unsplash.com/@janesmith",
	"source_name":    "Unsplash",
	"source_url":     "https://unsplash.com",
	"file_name":      "pliers01.avif",
	"q":              "pliers",
	"page":           "1",
	"sort":           "name,asc",
}

// suffixNominals cover field families by suffix, checked in order
var suffixNominals = []struct {
	suffix string
	value  string
}{
	{"_email", "john.doe@example.com"},
	{"_id", "01HZ0000000000000000000000"},
	{"_date", "2024-01-01"},
	{"_at", "2024-01-01 00:00:00"},
	{"_url", "https://example.com"},
	{"_price", "14.15"},
	{"_name", "John"},
}

// NominalValue returns the default valid value of field. Names are matched
// case-insensitively, exact names before suffixes; "billing_street" and
// friends fall back to the name without their billing_ prefix.
func NominalValue(field string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(field))
	if v, ok := nominals[key]; ok {
		return v, true
	}
	if rest, ok := strings.CutPrefix(key, "billing_"); ok {
		if v, ok := nominals[rest]; ok {
			return v, true
		}
	}
	for _, s := range suffixNominals {
		if strings.HasSuffix(key, s.suffix) {
			return s.value, true
		}
	}
	return "", false
}
