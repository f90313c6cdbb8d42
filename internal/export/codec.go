package export

import (
	"github.com/amoylab/toolshop-datagen/internal/model"
)

// codec converts between a table's rows in a dataset and CSV records.
// Column order must match the table's Columns.
type codec struct {
	encode func(ds *model.Dataset) [][]string
	decode func(ds *model.Dataset, f *fields)
}

var usersCodec = codec{
	encode: func(ds *model.Dataset) [][]string {
		out := make([][]string, 0, len(ds.Users))
		for _, u := range ds.Users {
			var r row
			r.str(u.ID)
			r.nstr(u.UID)
			r.nstr(u.Provider)
			r.str(u.FirstName)
			r.str(u.LastName)
			r.nstr(u.Street)
			r.nstr(u.City)
			r.nstr(u.State)
			r.nstr(u.Country)
			r.nstr(u.PostalCode)
			r.nstr(u.Phone)
			r.ndate(u.DOB)
			r.str(u.Email)
			r.nstr(u.Password)
			r.str(string(u.Role))
			r.bool(u.Enabled)
			r.int(u.FailedLoginAttempts)
			r.nstr(u.TOTPSecret)
			r.bool(u.TOTPEnabled)
			r.ntimestamp(u.TOTPVerifiedAt)
			r.stamps(u.CreatedAt, u.UpdatedAt)
			out = append(out, r)
		}
		return out
	},
	decode: func(ds *model.Dataset, f *fields) {
		u := model.User{
			ID:                  f.str(),
			UID:                 f.nstr(),
			Provider:            f.nstr(),
			FirstName:           f.str(),
			LastName:            f.str(),
			Street:              f.nstr(),
			City:                f.nstr(),
			State:               f.nstr(),
			Country:             f.nstr(),
			PostalCode:          f.nstr(),
			Phone:               f.nstr(),
			DOB:                 f.ndate(),
			Email:               f.str(),
			Password:            f.nstr(),
			Role:                model.UserRole(f.str()),
			Enabled:             f.bool(),
			FailedLoginAttempts: f.int(),
			TOTPSecret:          f.nstr(),
			TOTPEnabled:         f.bool(),
			TOTPVerifiedAt:      f.ntimestamp(),
		}
		u.CreatedAt, u.UpdatedAt = f.stamps()
		ds.Users = append(ds.Users, u)
	},
}

var categoriesCodec = codec{
	encode: func(ds *model.Dataset) [][]string {
		out := make([][]string, 0, len(ds.Categories))
		for _, c := range ds.Categories {
			var r row
			r.str(c.ID)
			r.str(c.Name)
			r.str(c.Slug)
			r.nstr(c.ParentID)
			r.stamps(c.CreatedAt, c.UpdatedAt)
			out = append(out, r)
		}
		return out
	},
	decode: func(ds *model.Dataset, f *fields) {
		c := model.Category{ID: f.str(), Name: f.str(), Slug: f.str(), ParentID: f.nstr()}
		c.CreatedAt, c.UpdatedAt = f.stamps()
		ds.Categories = append(ds.Categories, c)
	},
}

var brandsCodec = codec{
	encode: func(ds *model.Dataset) [][]string {
		out := make([][]string, 0, len(ds.Brands))
		for _, b := range ds.Brands {
			var r row
			r.str(b.ID)
			r.str(b.Name)
			r.str(b.Slug)
			r.stamps(b.CreatedAt, b.UpdatedAt)
			out = append(out, r)
		}
		return out
	},
	decode: func(ds *model.Dataset, f *fields) {
		b := model.Brand{ID: f.str(), Name: f.str(), Slug: f.str()}
		b.CreatedAt, b.UpdatedAt = f.stamps()
		ds.Brands = append(ds.Brands, b)
	},
}

var imagesCodec = codec{
	encode: func(ds *model.Dataset) [][]string {
		out := make([][]string, 0, len(ds.ProductImages))
		for _, i := range ds.ProductImages {
			var r row
			r.str(i.ID)
			r.str(i.ByName)
			r.str(i.ByURL)
			r.str(i.SourceName)
			r.str(i.SourceURL)
			r.str(i.FileName)
			r.str(i.Title)
			r.stamps(i.CreatedAt, i.UpdatedAt)
			out = append(out, r)
		}
		return out
	},
	decode: func(ds *model.Dataset, f *fields) {
		i := model.ProductImage{
			ID:         f.str(),
			ByName:     f.str(),
			ByURL:      f.str(),
			SourceName: f.str(),
			SourceURL:  f.str(),
			FileName:   f.str(),
			Title:      f.str(),
		}
		i.CreatedAt, i.UpdatedAt = f.stamps()
		ds.ProductImages = append(ds.ProductImages, i)
	},
}

var productsCodec = codec{
	encode: func(ds *model.Dataset) [][]string {
		out := make([][]string, 0, len(ds.Products))
		for _, p := range ds.Products {
			var r row
			r.str(p.ID)
			r.str(p.Name)
			r.str(p.Description)
			r.money(p.Price)
			r.bool(p.IsLocationOffer)
			r.bool(p.IsRental)
			r.str(p.CategoryID)
			r.str(p.BrandID)
			r.str(p.ProductImageID)
			r.bool(p.InStock)
			r.int(p.Stock)
			r.stamps(p.CreatedAt, p.UpdatedAt)
			out = append(out, r)
		}
		return out
	},
	decode: func(ds *model.Dataset, f *fields) {
		p := model.Product{
			ID:              f.str(),
			Name:            f.str(),
			Description:     f.str(),
			Price:           f.money(),
			IsLocationOffer: f.bool(),
			IsRental:        f.bool(),
			CategoryID:      f.str(),
			BrandID:         f.str(),
			ProductImageID:  f.str(),
			InStock:         f.bool(),
			Stock:           f.int(),
		}
		p.CreatedAt, p.UpdatedAt = f.stamps()
		ds.Products = append(ds.Products, p)
	},
}

var favoritesCodec = codec{
	encode: func(ds *model.Dataset) [][]string {
		out := make([][]string, 0, len(ds.Favorites))
		for _, fav := range ds.Favorites {
			var r row
			r.str(fav.ID)
			r.str(fav.UserID)
			r.str(fav.ProductID)
			r.stamps(fav.CreatedAt, fav.UpdatedAt)
			out = append(out, r)
		}
		return out
	},
	decode: func(ds *model.Dataset, f *fields) {
		fav := model.Favorite{ID: f.str(), UserID: f.str(), ProductID: f.str()}
		fav.CreatedAt, fav.UpdatedAt = f.stamps()
		ds.Favorites = append(ds.Favorites, fav)
	},
}

var invoicesCodec = codec{
	encode: func(ds *model.Dataset) [][]string {
		out := make([][]string, 0, len(ds.Invoices))
		for _, i := range ds.Invoices {
			var r row
			r.str(i.ID)
			r.str(i.InvoiceNumber)
			r.timestamp(i.InvoiceDate)
			r.str(i.BillingAddress)
			r.str(i.BillingCity)
			r.nstr(i.BillingState)
			r.str(i.BillingCountry)
			r.nstr(i.BillingPostcode)
			r.str(i.UserID)
			r.money(i.Total)
			r.stamps(i.CreatedAt, i.UpdatedAt)
			out = append(out, r)
		}
		return out
	},
	decode: func(ds *model.Dataset, f *fields) {
		i := model.Invoice{
			ID:              f.str(),
			InvoiceNumber:   f.str(),
			InvoiceDate:     f.timestamp(),
			BillingAddress:  f.str(),
			BillingCity:     f.str(),
			BillingState:    f.nstr(),
			BillingCountry:  f.str(),
			BillingPostcode: f.nstr(),
			UserID:          f.str(),
			Total:           f.money(),
		}
		i.CreatedAt, i.UpdatedAt = f.stamps()
		ds.Invoices = append(ds.Invoices, i)
	},
}

var invoiceItemsCodec = codec{
	encode: func(ds *model.Dataset) [][]string {
		out := make([][]string, 0, len(ds.InvoiceItems))
		for _, i := range ds.InvoiceItems {
			var r row
			r.str(i.ID)
			r.str(i.InvoiceID)
			r.str(i.ProductID)
			r.int(i.Quantity)
			r.money(i.UnitPrice)
			r.stamps(i.CreatedAt, i.UpdatedAt)
			out = append(out, r)
		}
		return out
	},
	decode: func(ds *model.Dataset, f *fields) {
		i := model.InvoiceItem{
			ID:        f.str(),
			InvoiceID: f.str(),
			ProductID: f.str(),
			Quantity:  f.int(),
			UnitPrice: f.money(),
		}
		i.CreatedAt, i.UpdatedAt = f.stamps()
		ds.InvoiceItems = append(ds.InvoiceItems, i)
	},
}

var paymentsCodec = codec{
	encode: func(ds *model.Dataset) [][]string {
		out := make([][]string, 0, len(ds.Payments))
		for _, p := range ds.Payments {
			var r row
			r.str(p.ID)
			r.str(p.InvoiceID)
			r.str(string(p.Method))
			r.str(string(p.Status))
			r.nstr(p.PaymentReferenceID)
			r.stamps(p.CreatedAt, p.UpdatedAt)
			out = append(out, r)
		}
		return out
	},
	decode: func(ds *model.Dataset, f *fields) {
		p := model.Payment{
			ID:                 f.str(),
			InvoiceID:          f.str(),
			Method:             model.PaymentMethod(f.str()),
			Status:             model.PaymentStatus(f.str()),
			PaymentReferenceID: f.nstr(),
		}
		p.CreatedAt, p.UpdatedAt = f.stamps()
		ds.Payments = append(ds.Payments, p)
	},
}
