package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// FormatMoney renders d with exactly two decimals
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatTimestamp renders t in UTC as YYYY-MM-DD HH:MM:SS
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// row builds one CSV record
type row []string

func (r *row) str(s string) { *r = append(*r, s) }

func (r *row) int(n int) { *r = append(*r, strconv.Itoa(n)) }

func (r *row) bool(b bool) { *r = append(*r, strconv.FormatBool(b)) }

func (r *row) money(d decimal.Decimal) { *r = append(*r, FormatMoney(d)) }

func (r *row) timestamp(t time.Time) { *r = append(*r, FormatTimestamp(t)) }

func (r *row) stamps(created, updated time.Time) {
	r.timestamp(created)
	r.timestamp(updated)
}

func (r *row) nstr(s *string) {
	if s == nil {
		r.str("")
		return
	}
	r.str(*s)
}

func (r *row) ntimestamp(t *time.Time) {
	if t == nil {
		r.str("")
		return
	}
	r.timestamp(*t)
}

func (r *row) ndate(t *time.Time) {
	if t == nil {
		r.str("")
		return
	}
	r.str(t.UTC().Format(DateLayout))
}

// fields reads one CSV record column by column. The first parse failure is
// kept and every later read returns a zero value.
type fields struct {
	rec  []string
	cols []Column
	pos  int
	err  error
}

func (f *fields) next() (string, Column) {
	v, c := f.rec[f.pos], f.cols[f.pos]
	f.pos++
	return v, c
}

func (f *fields) fail(c Column, v string, err error) {
	if f.err == nil {
		f.err = fmt.Errorf("column %s: cannot parse %q: %w", c.Name, v, err)
	}
}

func (f *fields) str() string {
	v, _ := f.next()
	return v
}

func (f *fields) nstr() *string {
	v, _ := f.next()
	if v == "" {
		return nil
	}
	return &v
}

func (f *fields) int() int {
	v, c := f.next()
	n, err := strconv.Atoi(v)
	if err != nil {
		f.fail(c, v, err)
	}
	return n
}

func (f *fields) bool() bool {
	v, c := f.next()
	b, err := strconv.ParseBool(v)
	if err != nil {
		f.fail(c, v, err)
	}
	return b
}

func (f *fields) money() decimal.Decimal {
	v, c := f.next()
	d, err := decimal.NewFromString(v)
	if err != nil {
		f.fail(c, v, err)
	}
	return d
}

func (f *fields) parseTime(layout string) *time.Time {
	v, c := f.next()
	if v == "" {
		if !c.Nullable {
			f.fail(c, v, fmt.Errorf("value required"))
		}
		return nil
	}
	t, err := time.ParseInLocation(layout, v, time.UTC)
	if err != nil {
		f.fail(c, v, err)
		return nil
	}
	return &t
}

func (f *fields) timestamp() time.Time {
	if t := f.parseTime(TimestampLayout); t != nil {
		return *t
	}
	return time.Time{}
}

func (f *fields) ntimestamp() *time.Time {
	return f.parseTime(TimestampLayout)
}

func (f *fields) ndate() *time.Time {
	return f.parseTime(DateLayout)
}

func (f *fields) stamps() (time.Time, time.Time) {
	return f.timestamp(), f.timestamp()
}
