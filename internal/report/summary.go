// Package report summarises a dataset and renders the summary as Markdown.
package report

import (
	"os"
	"slices"

	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/export"
	"github.com/amoylab/toolshop-datagen/internal/model"

	"github.com/shopspring/decimal"
)

type (
	// Summary is everything the report shows
	Summary struct {
		Run        RunInfo
		Tables     []TableCount
		TotalRows  int
		Roles      []Share
		Methods    []Share
		Statuses   []Share
		Categories CategoryStats
		Prices     PriceStats
		InStock    Share
		Revenue    Revenue
		Files      []File
	}

	// RunInfo identifies the run; zero fields are left out of the report
	RunInfo struct {
		Seed      *int64
		Anchor    string
		OutputDir string
	}

	TableCount struct {
		Table string
		Rows  int
	}

	// Share is a count and its fraction of a total
	Share struct {
		Name    string
		Count   int
		Percent float64
	}

	CategoryStats struct {
		Roots    int
		Children int
	}

	PriceStats struct {
		Min    decimal.Decimal
		Max    decimal.Decimal
		Mean   decimal.Decimal
		Median decimal.Decimal
	}

	Revenue struct {
		Invoiced decimal.Decimal
		Paid     decimal.Decimal // invoices with at least one SUCCESS payment
		Items    int
		Units    int
	}

	File struct {
		Name string
		Rows int
		Size uint64
	}
)

var (
	roleOrder   = []model.UserRole{model.RoleCustomer, model.RoleAdmin, model.RoleManager, model.RoleSalesRep, model.RoleWarehouseStaff}
	methodOrder = []model.PaymentMethod{model.MethodCreditCard, model.MethodBankTransfer, model.MethodCashOnDelivery, model.MethodBuyNowPayLater}
	statusOrder = []model.PaymentStatus{model.StatusSuccess, model.StatusPending, model.StatusFailed}
)

// Summarize computes the summary of ds
func Summarize(ds *model.Dataset, run RunInfo) Summary {
	s := Summary{Run: run}

	counts := ds.Counts()
	for _, t := range model.Tables {
		s.Tables = append(s.Tables, TableCount{Table: t, Rows: counts[t]})
		s.TotalRows += counts[t]
	}

	roles := map[model.UserRole]int{}
	for _, u := range ds.Users {
		roles[u.Role]++
	}
	s.Roles = shares(roleOrder, roles, len(ds.Users))

	methods := map[model.PaymentMethod]int{}
	statuses := map[model.PaymentStatus]int{}
	paid := map[string]bool{}
	for _, p := range ds.Payments {
		methods[p.Method]++
		statuses[p.Status]++
		if p.Status == model.StatusSuccess {
			paid[p.InvoiceID] = true
		}
	}
	s.Methods = shares(methodOrder, methods, len(ds.Payments))
	s.Statuses = shares(statusOrder, statuses, len(ds.Payments))

	for _, c := range ds.Categories {
		if c.ParentID == nil {
			s.Categories.Roots++
		} else {
			s.Categories.Children++
		}
	}

	s.Prices = priceStats(ds.Products)
	inStock := 0
	for _, p := range ds.Products {
		if p.InStock {
			inStock++
		}
	}
	s.InStock = Share{Name: "in_stock", Count: inStock, Percent: percent(inStock, len(ds.Products))}

	for _, inv := range ds.Invoices {
		s.Revenue.Invoiced = s.Revenue.Invoiced.Add(inv.Total)
		if paid[inv.ID] {
			s.Revenue.Paid = s.Revenue.Paid.Add(inv.Total)
		}
	}
	for _, it := range ds.InvoiceItems {
		s.Revenue.Items++
		s.Revenue.Units += it.Quantity
	}
	return s
}

// AddFiles records the files of a run with their size on disk
func (s *Summary) AddFiles(written []export.Written) error {
	for _, w := range written {
		info, err := os.Stat(w.Path)
		if err != nil {
			return errorx.NewIOError("stat", w.Path, err)
		}
		s.Files = append(s.Files, File{Name: info.Name(), Rows: w.Rows, Size: uint64(info.Size())})
	}
	return nil
}

func shares[K ~string](order []K, counts map[K]int, total int) []Share {
	out := make([]Share, 0, len(order))
	for _, k := range order {
		out = append(out, Share{Name: string(k), Count: counts[k], Percent: percent(counts[k], total)})
	}
	return out
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

func priceStats(products []model.Product) PriceStats {
	if len(products) == 0 {
		return PriceStats{}
	}
	prices := make([]decimal.Decimal, len(products))
	sum := decimal.Zero
	for i, p := range products {
		prices[i] = p.Price
		sum = sum.Add(p.Price)
	}
	slices.SortFunc(prices, func(a, b decimal.Decimal) int { return a.Cmp(b) })

	n := len(prices)
	median := prices[n/2]
	if n%2 == 0 {
		median = prices[n/2-1].Add(prices[n/2]).Div(decimal.NewFromInt(2))
	}
	return PriceStats{
		Min:    prices[0],
		Max:    prices[n-1],
		Mean:   sum.Div(decimal.NewFromInt(int64(n))).Round(2),
		Median: median.Round(2),
	}
}
