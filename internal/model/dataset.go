package model

const (
	TableUsers         = "users"
	TableCategories    = "categories"
	TableBrands        = "brands"
	TableProductImages = "product_images"
	TableProducts      = "products"
	TableFavorites     = "favorites"
	TableInvoices      = "invoices"
	TableInvoiceItems  = "invoice_items"
	TablePayments      = "payments"
)

// Tables lists every table in dependency order: a table only references
// tables before it. Loading follows this order, deleting runs it backwards.
var Tables = []string{
	TableUsers,
	TableCategories,
	TableBrands,
	TableProductImages,
	TableProducts,
	TableFavorites,
	TableInvoices,
	TableInvoiceItems,
	TablePayments,
}

// Dataset is the full in-memory graph of one generation run
type Dataset struct {
	Users         []User
	Categories    []Category
	Brands        []Brand
	ProductImages []ProductImage
	Products      []Product
	Favorites     []Favorite
	Invoices      []Invoice
	InvoiceItems  []InvoiceItem
	Payments      []Payment
}

// Counts returns the row count per table name
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		TableUsers:         len(d.Users),
		TableCategories:    len(d.Categories),
		TableBrands:        len(d.Brands),
		TableProductImages: len(d.ProductImages),
		TableProducts:      len(d.Products),
		TableFavorites:     len(d.Favorites),
		TableInvoices:      len(d.Invoices),
		TableInvoiceItems:  len(d.InvoiceItems),
		TablePayments:      len(d.Payments),
	}
}

// Rows returns the records of table as a slice pointer suitable for gorm,
// or nil for an unknown table.
func (d *Dataset) Rows(table string) any {
	switch table {
	case TableUsers:
		return &d.Users
	case TableCategories:
		return &d.Categories
	case TableBrands:
		return &d.Brands
	case TableProductImages:
		return &d.ProductImages
	case TableProducts:
		return &d.Products
	case TableFavorites:
		return &d.Favorites
	case TableInvoices:
		return &d.Invoices
	case TableInvoiceItems:
		return &d.InvoiceItems
	case TablePayments:
		return &d.Payments
	default:
		return nil
	}
}

// Models returns one zero value per table in dependency order, for migration
func Models() []any {
	return []any{
		&User{}, &Category{}, &Brand{}, &ProductImage{}, &Product{},
		&Favorite{}, &Invoice{}, &InvoiceItem{}, &Payment{},
	}
}
