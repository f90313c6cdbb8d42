// Package export serializes a dataset to one CSV file per table and reads
// such a directory back.
package export

import (
	"github.com/amoylab/toolshop-datagen/internal/model"
)

// Kind tells consumers how a column's text is to be interpreted
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindMoney
	KindTimestamp
	KindDate
)

// Column is one CSV column
type Column struct {
	Name     string
	Kind     Kind
	Nullable bool
}

// Table describes the CSV layout of one table
type Table struct {
	Name    string
	Columns []Column
	codec   codec
}

// FileName is the CSV file the table is written to
func (t Table) FileName() string {
	return t.Name + ".csv"
}

// Header returns the column names in order
func (t Table) Header() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Records encodes the table's rows of ds, without header
func (t Table) Records(ds *model.Dataset) [][]string {
	return t.codec.encode(ds)
}

func col(name string, kind Kind) Column { return Column{Name: name, Kind: kind} }

func nullable(name string, kind Kind) Column { return Column{Name: name, Kind: kind, Nullable: true} }

func str(name string) Column { return col(name, KindString) }

// withStamps appends created_at and updated_at, the last two columns of every table
func withStamps(cols ...Column) []Column {
	return append(cols, col("created_at", KindTimestamp), col("updated_at", KindTimestamp))
}

// Schema lists every table in dependency order
var Schema = []Table{
	{Name: model.TableUsers, codec: usersCodec, Columns: withStamps(
		str("id"), nullable("uid", KindString), nullable("provider", KindString),
		str("first_name"), str("last_name"),
		nullable("street", KindString), nullable("city", KindString), nullable("state", KindString),
		nullable("country", KindString), nullable("postal_code", KindString), nullable("phone", KindString),
		nullable("dob", KindDate), str("email"), nullable("password", KindString), str("role"),
		col("enabled", KindBool), col("failed_login_attempts", KindInt),
		nullable("totp_secret", KindString), col("totp_enabled", KindBool), nullable("totp_verified_at", KindTimestamp),
	)},
	{Name: model.TableCategories, codec: categoriesCodec, Columns: withStamps(
		str("id"), str("name"), str("slug"), nullable("parent_id", KindString),
	)},
	{Name: model.TableBrands, codec: brandsCodec, Columns: withStamps(
		str("id"), str("name"), str("slug"),
	)},
	{Name: model.TableProductImages, codec: imagesCodec, Columns: withStamps(
		str("id"), str("by_name"), str("by_url"), str("source_name"), str("source_url"),
		str("file_name"), str("title"),
	)},
	{Name: model.TableProducts, codec: productsCodec, Columns: withStamps(
		str("id"), str("name"), str("description"), col("price", KindMoney),
		col("is_location_offer", KindBool), col("is_rental", KindBool),
		str("category_id"), str("brand_id"), str("product_image_id"),
		col("in_stock", KindBool), col("stock", KindInt),
	)},
	{Name: model.TableFavorites, codec: favoritesCodec, Columns: withStamps(
		str("id"), str("user_id"), str("product_id"),
	)},
	{Name: model.TableInvoices, codec: invoicesCodec, Columns: withStamps(
		str("id"), str("invoice_number"), col("invoice_date", KindTimestamp),
		str("billing_address"), str("billing_city"), nullable("billing_state", KindString),
		str("billing_country"), nullable("billing_postcode", KindString),
		str("user_id"), col("total", KindMoney),
	)},
	{Name: model.TableInvoiceItems, codec: invoiceItemsCodec, Columns: withStamps(
		str("id"), str("invoice_id"), str("product_id"), col("quantity", KindInt), col("unit_price", KindMoney),
	)},
	{Name: model.TablePayments, codec: paymentsCodec, Columns: withStamps(
		str("id"), str("invoice_id"), str("method"), str("status"), nullable("payment_reference_id", KindString),
	)},
}

// Lookup returns the table called name
func Lookup(name string) (Table, bool) {
	for _, t := range Schema {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
