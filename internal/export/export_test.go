package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0 = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	t1 = time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)
)

func strp(s string) *string { return &s }

func sampleDataset() *model.Dataset {
	stamps := model.Timestamps{CreatedAt: t0, UpdatedAt: t1}
	dob := time.Date(1980, 2, 29, 0, 0, 0, 0, time.UTC)
	return &model.Dataset{
		Users: []model.User{{
			ID: "01HZX0000000000000000USER1", FirstName: "Anouk", LastName: "de Vries",
			Street: strp("12 Kerkstraat"), City: strp("Utrecht"), Country: strp("NL"),
			DOB: &dob, Email: "anouk.devries@example.com", Role: model.RoleAdmin,
			Enabled: true, TOTPEnabled: true, TOTPSecret: strp("0a1b2c3d4e5f6a7b"), TOTPVerifiedAt: &t1,
			Timestamps: stamps,
		}},
		Categories: []model.Category{
			{ID: "01HZX000000000000000CAT001", Name: "Hand Tools", Slug: "hand-tools", Timestamps: stamps},
			{ID: "01HZX000000000000000CAT002", Name: "Files & Rasps", Slug: "files-rasps", ParentID: strp("01HZX000000000000000CAT001"), Timestamps: stamps},
		},
		Brands:        []model.Brand{{ID: "01HZX000000000000000BRD001", Name: "Black & Decker", Slug: "black-decker", Timestamps: stamps}},
		ProductImages: []model.ProductImage{{ID: "01HZX000000000000000IMG001", ByName: "Sarah Chen", Title: "Hammers, \"claw\"", Timestamps: stamps}},
		Products: []model.Product{{
			ID: "01HZX000000000000000PRD001", Name: "Black & Decker Files & Rasps KX-1234",
			Description: "Durable file,\nmulti-line", Price: decimal.RequireFromString("12.5"),
			CategoryID: "01HZX000000000000000CAT002", BrandID: "01HZX000000000000000BRD001",
			ProductImageID: "01HZX000000000000000IMG001", InStock: false, Stock: 7, Timestamps: stamps,
		}},
		Invoices: []model.Invoice{{
			ID: "01HZX000000000000000INV001", InvoiceNumber: "INV-2024-000001", InvoiceDate: t0,
			BillingAddress: "1 Main Street", BillingCity: "Austin", BillingState: strp("TX"),
			BillingCountry: "US", UserID: "01HZX0000000000000000USER1", Total: decimal.RequireFromString("25"),
			Timestamps: stamps,
		}},
		InvoiceItems: []model.InvoiceItem{{
			ID: "01HZX000000000000000ITM001", InvoiceID: "01HZX000000000000000INV001",
			ProductID: "01HZX000000000000000PRD001", Quantity: 2, UnitPrice: decimal.RequireFromString("12.50"),
			Timestamps: stamps,
		}},
		Payments: []model.Payment{{
			ID: "01HZX000000000000000PAY001", InvoiceID: "01HZX000000000000000INV001",
			Method: model.MethodCreditCard, Status: model.StatusSuccess, PaymentReferenceID: strp("CCABCDEF0123456789"),
			Timestamps: stamps,
		}},
	}
}

func TestProductsHeader(t *testing.T) {
	table, ok := Lookup(model.TableProducts)
	require.True(t, ok)
	assert.Equal(t,
		"id,name,description,price,is_location_offer,is_rental,category_id,brand_id,product_image_id,in_stock,stock,created_at,updated_at",
		strings.Join(table.Header(), ","))

	_, ok = Lookup("orders")
	assert.False(t, ok)
}

func TestSchemaOrderMatchesTables(t *testing.T) {
	require.Len(t, Schema, len(model.Tables))
	for i, table := range Schema {
		assert.Equal(t, model.Tables[i], table.Name)
	}
}

func TestWriteCSV_Format(t *testing.T) {
	dir := t.TempDir()
	written, err := WriteCSV(dir, sampleDataset())
	require.NoError(t, err)
	require.Len(t, written, len(Schema))
	assert.Equal(t, filepath.Join(dir, "users.csv"), written[0].Path)
	assert.Equal(t, 1, written[0].Rows)
	assert.Equal(t, 0, written[5].Rows) // favorites

	data, err := os.ReadFile(filepath.Join(dir, "products.csv"))
	require.NoError(t, err)
	lines := strings.SplitN(string(data), "\n", 2)
	assert.Contains(t, lines[1], ",12.50,false,false,")
	assert.Contains(t, lines[1], ",false,7,2024-03-09 14:05:07,2024-07-01 08:00:00")
	assert.Contains(t, lines[1], "\"Durable file,\nmulti-line\"")

	data, err = os.ReadFile(filepath.Join(dir, "categories.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "01HZX000000000000000CAT001,Hand Tools,hand-tools,,2024-03-09 14:05:07")

	data, err = os.ReadFile(filepath.Join(dir, "invoices.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ",25.00,")

	data, err = os.ReadFile(filepath.Join(dir, "favorites.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,user_id,product_id,created_at,updated_at\n", string(data))
}

func TestReadCSV_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := sampleDataset()
	_, err := WriteCSV(dir, in)
	require.NoError(t, err)

	out, err := ReadCSV(dir)
	require.NoError(t, err)
	assert.Equal(t, in.Counts(), out.Counts())

	u := out.Users[0]
	assert.Equal(t, "de Vries", u.LastName)
	assert.Nil(t, u.UID)
	require.NotNil(t, u.DOB)
	assert.Equal(t, "1980-02-29", u.DOB.Format(DateLayout))
	assert.True(t, u.TOTPVerifiedAt.Equal(t1))
	assert.Equal(t, model.RoleAdmin, u.Role)

	assert.Equal(t, "12.50", out.Products[0].Price.StringFixed(2))
	assert.Equal(t, "Durable file,\nmulti-line", out.Products[0].Description)
	assert.Equal(t, "Hammers, \"claw\"", out.ProductImages[0].Title)
	require.NotNil(t, out.Categories[1].ParentID)
	assert.Equal(t, in.Categories[1].ParentID, out.Categories[1].ParentID)
	assert.Nil(t, out.Invoices[0].BillingPostcode)
	assert.True(t, out.Invoices[0].InvoiceDate.Equal(t0))
	assert.Empty(t, out.Favorites)
}

func TestWriteCSV_IOError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := WriteCSV(filepath.Join(file, "out"), sampleDataset())
	var ioErr *errorx.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, filepath.Join(file, "out"), ioErr.Path)
}

func TestReadCSV_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadCSV(t.TempDir())
		var ioErr *errorx.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("wrong header", func(t *testing.T) {
		dir := t.TempDir()
		_, err := WriteCSV(dir, sampleDataset())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "brands.csv"), []byte("id,slug,name,created_at,updated_at\n"), 0o644))
		_, err = ReadCSV(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected header")
	})

	t.Run("bad value", func(t *testing.T) {
		dir := t.TempDir()
		_, err := WriteCSV(dir, sampleDataset())
		require.NoError(t, err)
		content := "id,invoice_id,product_id,quantity,unit_price,created_at,updated_at\n" +
			"X,Y,Z,two,1.00,2024-01-01 00:00:00,2024-01-01 00:00:00\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice_items.csv"), []byte(content), 0o644))
		_, err = ReadCSV(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
		assert.Contains(t, err.Error(), "column quantity")
	})
}
