// Package integrity validates a generated dataset as a whole: every foreign
// key resolves, every unique field is unique, the category tree is acyclic
// and invoice totals match their items.
package integrity

import (
	"fmt"

	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/generator"
	"github.com/amoylab/toolshop-datagen/internal/identity"
	"github.com/amoylab/toolshop-datagen/internal/model"
)

// Violation is one failed constraint on one row
type Violation struct {
	Table      string
	RowID      string
	Constraint string
	Detail     string
}

func (v Violation) String() string {
	s := fmt.Sprintf("%s[%s]: %s", v.Table, v.RowID, v.Constraint)
	if v.Detail != "" {
		s += " (" + v.Detail + ")"
	}
	return s
}

type idSet map[string]struct{}

func (s idSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

type checker struct {
	violations []Violation
}

func (c *checker) add(table, id, constraint, format string, args ...any) {
	c.violations = append(c.violations, Violation{
		Table:      table,
		RowID:      id,
		Constraint: constraint,
		Detail:     fmt.Sprintf(format, args...),
	})
}

// ids collects the primary keys of a table and reports duplicates
func ids[T any](c *checker, table string, rows []T, id func(T) string) idSet {
	set := make(idSet, len(rows))
	for _, r := range rows {
		k := id(r)
		if len(k) != identity.IDLength {
			c.add(table, k, "id length", "want %d characters, got %d", identity.IDLength, len(k))
		}
		if set.has(k) {
			c.add(table, k, "unique id", "duplicate primary key")
		}
		set[k] = struct{}{}
	}
	return set
}

// unique reports rows whose key was already seen
func unique[T any](c *checker, table, constraint string, rows []T, id, key func(T) string) {
	seen := make(map[string]string, len(rows))
	for _, r := range rows {
		k := key(r)
		if first, dup := seen[k]; dup {
			c.add(table, id(r), constraint, "%q already used by %s", k, first)
			continue
		}
		seen[k] = id(r)
	}
}

func (c *checker) ref(table, rowID, column, target string, value string, targets idSet) {
	if !targets.has(value) {
		c.add(table, rowID, "foreign key "+column, "%q not found in %s", value, target)
	}
}

// Check runs every check over ds and returns all violations in a stable
// order. An empty result means the dataset is consistent.
func Check(ds *model.Dataset) []Violation {
	c := &checker{}

	userIDs := ids(c, model.TableUsers, ds.Users, func(u model.User) string { return u.ID })
	categoryIDs := ids(c, model.TableCategories, ds.Categories, func(x model.Category) string { return x.ID })
	brandIDs := ids(c, model.TableBrands, ds.Brands, func(b model.Brand) string { return b.ID })
	imageIDs := ids(c, model.TableProductImages, ds.ProductImages, func(i model.ProductImage) string { return i.ID })
	productIDs := ids(c, model.TableProducts, ds.Products, func(p model.Product) string { return p.ID })
	ids(c, model.TableFavorites, ds.Favorites, func(f model.Favorite) string { return f.ID })
	invoiceIDs := ids(c, model.TableInvoices, ds.Invoices, func(i model.Invoice) string { return i.ID })
	ids(c, model.TableInvoiceItems, ds.InvoiceItems, func(i model.InvoiceItem) string { return i.ID })
	ids(c, model.TablePayments, ds.Payments, func(p model.Payment) string { return p.ID })

	unique(c, model.TableUsers, "unique email", ds.Users,
		func(u model.User) string { return u.ID }, func(u model.User) string { return u.Email })
	unique(c, model.TableCategories, "unique slug", ds.Categories,
		func(x model.Category) string { return x.ID }, func(x model.Category) string { return x.Slug })
	unique(c, model.TableBrands, "unique slug", ds.Brands,
		func(b model.Brand) string { return b.ID }, func(b model.Brand) string { return b.Slug })
	unique(c, model.TableFavorites, "unique (user_id, product_id)", ds.Favorites,
		func(f model.Favorite) string { return f.ID }, func(f model.Favorite) string { return f.UserID + "/" + f.ProductID })
	unique(c, model.TableInvoices, "unique invoice_number", ds.Invoices,
		func(i model.Invoice) string { return i.ID }, func(i model.Invoice) string { return i.InvoiceNumber })

	checkCategoryTree(c, ds.Categories, categoryIDs)

	for _, p := range ds.Products {
		c.ref(model.TableProducts, p.ID, "category_id", model.TableCategories, p.CategoryID, categoryIDs)
		c.ref(model.TableProducts, p.ID, "brand_id", model.TableBrands, p.BrandID, brandIDs)
		c.ref(model.TableProducts, p.ID, "product_image_id", model.TableProductImages, p.ProductImageID, imageIDs)
	}
	for _, f := range ds.Favorites {
		c.ref(model.TableFavorites, f.ID, "user_id", model.TableUsers, f.UserID, userIDs)
		c.ref(model.TableFavorites, f.ID, "product_id", model.TableProducts, f.ProductID, productIDs)
	}
	for _, i := range ds.Invoices {
		c.ref(model.TableInvoices, i.ID, "user_id", model.TableUsers, i.UserID, userIDs)
	}
	for _, i := range ds.InvoiceItems {
		c.ref(model.TableInvoiceItems, i.ID, "invoice_id", model.TableInvoices, i.InvoiceID, invoiceIDs)
		c.ref(model.TableInvoiceItems, i.ID, "product_id", model.TableProducts, i.ProductID, productIDs)
		if i.Quantity < 1 {
			c.add(model.TableInvoiceItems, i.ID, "quantity", "must be at least 1, got %d", i.Quantity)
		}
	}
	for _, p := range ds.Payments {
		c.ref(model.TablePayments, p.ID, "invoice_id", model.TableInvoices, p.InvoiceID, invoiceIDs)
	}

	totals := generator.Totals(ds.InvoiceItems)
	for _, i := range ds.Invoices {
		want := totals[i.ID].Round(2)
		if !i.Total.Round(2).Equal(want) {
			c.add(model.TableInvoices, i.ID, "total", "total %s, items sum to %s", i.Total.StringFixed(2), want.StringFixed(2))
		}
	}

	return c.violations
}

// checkCategoryTree reports dangling, self-referencing and cyclic parents.
// Following parent_id from any category must reach a root within
// len(categories) hops.
func checkCategoryTree(c *checker, categories []model.Category, known idSet) {
	parent := make(map[string]string, len(categories))
	for _, cat := range categories {
		if cat.ParentID == nil {
			continue
		}
		switch {
		case *cat.ParentID == cat.ID:
			c.add(model.TableCategories, cat.ID, "parent_id", "category is its own parent")
		case !known.has(*cat.ParentID):
			c.add(model.TableCategories, cat.ID, "foreign key parent_id", "%q not found in %s", *cat.ParentID, model.TableCategories)
		default:
			parent[cat.ID] = *cat.ParentID
		}
	}
	for _, cat := range categories {
		cur, hops := cat.ID, 0
		for {
			next, ok := parent[cur]
			if !ok {
				break
			}
			if hops++; hops > len(categories) {
				c.add(model.TableCategories, cat.ID, "acyclic parent_id", "parent chain does not reach a root")
				break
			}
			cur = next
		}
	}
}

// Validate returns the first violation of ds as an IntegrityViolationError,
// or nil when the dataset is consistent
func Validate(ds *model.Dataset) error {
	return AsError(Check(ds))
}

// AsError reports the first of violations as an IntegrityViolationError
// counting the rest, or returns nil when there are none
func AsError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	v := violations[0]
	return &errorx.IntegrityViolationError{
		Entity:     v.Table,
		RowID:      v.RowID,
		Constraint: v.Constraint,
		Detail:     v.Detail,
		Remaining:  len(violations) - 1,
	}
}
