package fixture

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amoylab/toolshop-datagen/internal/common/errorx"

	"github.com/tidwall/gjson"
)

// Field is one named request value of a test case
type Field struct {
	Name  string
	Value Value
}

// Case is one data-driven API test case
type Case struct {
	ID       string
	Title    string
	Method   string
	Expected string
	Result   string // PASS or FAIL
	Fields   []Field
}

// Resolved is a case with every placeholder replaced
type Resolved struct {
	ID       string          `json:"test_case_id"`
	Title    string          `json:"title,omitempty"`
	Method   string          `json:"method"`
	Expected string          `json:"expected_result,omitempty"`
	Result   string          `json:"result,omitempty"`
	Body     json.RawMessage `json:"request_body"`
}

// metaColumns are CSV columns describing the case rather than the request
var metaColumns = map[string]bool{
	"test_case_id":    true,
	"title":           true,
	"preconditions":   true,
	"test_steps":      true,
	"expected_result": true,
	"actual_result":   true,
	"result":          true,
	"method":          true,
}

// Resolve replaces the placeholders of c. The body keeps the field order
// of the source file; raw JSON literals are embedded unchanged.
func (c Case) Resolve() (Resolved, error) {
	var body bytes.Buffer
	body.WriteByte('{')
	for i, f := range c.Fields {
		if i > 0 {
			body.WriteByte(',')
		}
		key, _ := json.Marshal(f.Name)
		body.Write(key)
		body.WriteByte(':')
		if f.Value.Kind == Literal && f.Value.JSON {
			body.WriteString(f.Value.Text)
			continue
		}
		text, err := Resolve(f.Name, f.Value)
		if err != nil {
			return Resolved{}, fmt.Errorf("case %s: %w", c.ID, err)
		}
		val, _ := json.Marshal(text)
		body.Write(val)
	}
	body.WriteByte('}')
	return Resolved{
		ID:       c.ID,
		Title:    c.Title,
		Method:   c.Method,
		Expected: c.Expected,
		Result:   c.Result,
		Body:     body.Bytes(),
	}, nil
}

// Load reads the cases of a .csv or .json test-data file
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorx.NewIOError("read", path, err)
	}
	var cases []Case
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		cases, err = ParseJSON(data)
	case ".csv":
		cases, err = ParseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%s: unsupported test-data format", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// ParseCSV reads one case per row. Columns other than the case metadata
// become request fields; the method defaults to GET.
func ParseCSV(r io.Reader) ([]Case, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var cases []Case
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return cases, nil
		}
		if err != nil {
			return nil, err
		}
		c := Case{Method: "GET"}
		for i, name := range header {
			cell := rec[i]
			switch name {
			case "test_case_id":
				c.ID = cell
			case "title":
				c.Title = cell
			case "expected_result":
				c.Expected = cell
			case "result":
				c.Result = cell
			case "method":
				if cell != "" {
					c.Method = strings.ToUpper(cell)
				}
			}
			if metaColumns[name] {
				continue
			}
			v, err := Parse(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: %w", line, name, err)
			}
			c.Fields = append(c.Fields, Field{Name: name, Value: v})
		}
		cases = append(cases, c)
	}
}

// ParseJSON reads the test_cases array of a JSON test-data file. String
// values of request_body may hold placeholders; any other JSON value is
// kept as is.
func ParseJSON(data []byte) ([]Case, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	method := doc.Get("method").String()
	if method == "" {
		method = "POST"
	}

	var (
		cases []Case
		err   error
	)
	doc.Get("test_cases").ForEach(func(_, tc gjson.Result) bool {
		c := Case{
			ID:       tc.Get("test_case_id").String(),
			Title:    tc.Get("title").String(),
			Method:   strings.ToUpper(method),
			Expected: tc.Get("expected_result").String(),
			Result:   tc.Get("result").String(),
		}
		tc.Get("request_body").ForEach(func(key, value gjson.Result) bool {
			var v Value
			if value.Type == gjson.String {
				if v, err = Parse(value.String()); err != nil {
					err = fmt.Errorf("case %s field %s: %w", c.ID, key.String(), err)
					return false
				}
			} else {
				v = Value{Kind: Literal, Text: value.Raw, JSON: true}
			}
			c.Fields = append(c.Fields, Field{Name: key.String(), Value: v})
			return true
		})
		if err != nil {
			return false
		}
		cases = append(cases, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return cases, nil
}
