package integrity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// id returns a 26 character identifier ending in n
func id(prefix string, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, 26-len(prefix), n)
}

func strp(s string) *string { return &s }

func validDataset() *model.Dataset {
	root := id("CAT", 1)
	return &model.Dataset{
		Users: []model.User{
			{ID: id("USR", 1), Email: "a@example.com"},
			{ID: id("USR", 2), Email: "b@example.com"},
		},
		Categories: []model.Category{
			{ID: root, Slug: "hand-tools"},
			{ID: id("CAT", 2), Slug: "hammers", ParentID: strp(root)},
		},
		Brands:        []model.Brand{{ID: id("BRD", 1), Slug: "dewalt"}},
		ProductImages: []model.ProductImage{{ID: id("IMG", 1)}},
		Products: []model.Product{{
			ID: id("PRD", 1), CategoryID: id("CAT", 2), BrandID: id("BRD", 1),
			ProductImageID: id("IMG", 1), Price: decimal.RequireFromString("10.00"),
		}},
		Favorites: []model.Favorite{
			{ID: id("FAV", 1), UserID: id("USR", 1), ProductID: id("PRD", 1)},
			{ID: id("FAV", 2), UserID: id("USR", 2), ProductID: id("PRD", 1)},
		},
		Invoices: []model.Invoice{{
			ID: id("INV", 1), InvoiceNumber: "INV-2025-000001", UserID: id("USR", 1),
			Total: decimal.RequireFromString("34.50"),
		}},
		InvoiceItems: []model.InvoiceItem{
			{ID: id("ITM", 1), InvoiceID: id("INV", 1), ProductID: id("PRD", 1), Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{ID: id("ITM", 2), InvoiceID: id("INV", 1), ProductID: id("PRD", 1), Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")},
			{ID: id("ITM", 3), InvoiceID: id("INV", 1), ProductID: id("PRD", 1), Quantity: 4, UnitPrice: decimal.RequireFromString("2.25")},
		},
		Payments: []model.Payment{{ID: id("PAY", 1), InvoiceID: id("INV", 1)}},
	}
}

func TestCheck_Valid(t *testing.T) {
	ds := validDataset()
	assert.Empty(t, Check(ds))
	assert.NoError(t, Validate(ds))
}

func TestCheck_Violations(t *testing.T) {
	tests := []struct {
		name       string
		corrupt    func(ds *model.Dataset)
		table      string
		constraint string
	}{
		{"dangling category", func(ds *model.Dataset) { ds.Products[0].CategoryID = id("CAT", 9) },
			model.TableProducts, "foreign key category_id"},
		{"dangling brand", func(ds *model.Dataset) { ds.Products[0].BrandID = id("BRD", 9) },
			model.TableProducts, "foreign key brand_id"},
		{"dangling image", func(ds *model.Dataset) { ds.Products[0].ProductImageID = id("IMG", 9) },
			model.TableProducts, "foreign key product_image_id"},
		{"dangling favorite user", func(ds *model.Dataset) { ds.Favorites[0].UserID = id("USR", 9) },
			model.TableFavorites, "foreign key user_id"},
		{"dangling invoice user", func(ds *model.Dataset) { ds.Invoices[0].UserID = id("USR", 9) },
			model.TableInvoices, "foreign key user_id"},
		{"dangling item product", func(ds *model.Dataset) { ds.InvoiceItems[0].ProductID = id("PRD", 9) },
			model.TableInvoiceItems, "foreign key product_id"},
		{"dangling payment", func(ds *model.Dataset) { ds.Payments[0].InvoiceID = id("INV", 9) },
			model.TablePayments, "foreign key invoice_id"},
		{"duplicate email", func(ds *model.Dataset) { ds.Users[1].Email = "a@example.com" },
			model.TableUsers, "unique email"},
		{"duplicate category slug", func(ds *model.Dataset) { ds.Categories[1].Slug = "hand-tools" },
			model.TableCategories, "unique slug"},
		{"duplicate favorite pair", func(ds *model.Dataset) { ds.Favorites[1].UserID = id("USR", 1) },
			model.TableFavorites, "unique (user_id, product_id)"},
		{"duplicate invoice number", func(ds *model.Dataset) {
			inv := ds.Invoices[0]
			inv.ID = id("INV", 2)
			inv.Total = decimal.Zero
			ds.Invoices = append(ds.Invoices, inv)
		}, model.TableInvoices, "unique invoice_number"},
		{"duplicate id", func(ds *model.Dataset) { ds.Brands = append(ds.Brands, model.Brand{ID: id("BRD", 1), Slug: "other"}) },
			model.TableBrands, "unique id"},
		{"short id", func(ds *model.Dataset) { ds.Payments[0].ID = "PAY1" },
			model.TablePayments, "id length"},
		{"self parent", func(ds *model.Dataset) { ds.Categories[0].ParentID = strp(ds.Categories[0].ID) },
			model.TableCategories, "parent_id"},
		{"cycle", func(ds *model.Dataset) { ds.Categories[0].ParentID = strp(ds.Categories[1].ID) },
			model.TableCategories, "acyclic parent_id"},
		{"wrong total", func(ds *model.Dataset) { ds.Invoices[0].Total = decimal.RequireFromString("34.49") },
			model.TableInvoices, "total"},
		{"zero quantity", func(ds *model.Dataset) {
			ds.InvoiceItems[0].Quantity = 0
			ds.Invoices[0].Total = decimal.RequireFromString("14.50")
		}, model.TableInvoiceItems, "quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := validDataset()
			tt.corrupt(ds)
			violations := Check(ds)
			require.NotEmpty(t, violations)

			found := false
			for _, v := range violations {
				if v.Table == tt.table && v.Constraint == tt.constraint {
					found = true
				}
			}
			assert.True(t, found, "violations: %v", violations)

			err := Validate(ds)
			var ierr *errorx.IntegrityViolationError
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, len(violations)-1, ierr.Remaining)
		})
	}
}

func TestValidate_ErrorNamesRow(t *testing.T) {
	ds := validDataset()
	ds.Payments[0].InvoiceID = id("INV", 7)
	err := Validate(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), model.TablePayments)
	assert.Contains(t, err.Error(), ds.Payments[0].ID)
	assert.Contains(t, err.Error(), "foreign key invoice_id")

	cat, ok := errorx.CategoryOf(err)
	require.True(t, ok)
	assert.Equal(t, errorx.CategoryIntegrity, cat)
}

func TestViolationString(t *testing.T) {
	v := Violation{Table: "brands", RowID: "x", Constraint: "unique slug", Detail: "dup"}
	assert.Equal(t, "brands[x]: unique slug (dup)", v.String())
}
