package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/amoylab/toolshop-datagen/internal/common/errorx"
	"github.com/amoylab/toolshop-datagen/internal/model"
)

// Written describes one file produced by WriteCSV
type Written struct {
	Table string
	Path  string
	Rows  int
}

// WriteCSV writes one CSV file per table of ds into dir, in dependency
// order. The first failure stops the export; files written before it are
// left in place.
func WriteCSV(dir string, ds *model.Dataset) ([]Written, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errorx.NewIOError("create directory", dir, err)
	}
	written := make([]Written, 0, len(Schema))
	for _, t := range Schema {
		path := filepath.Join(dir, t.FileName())
		records := t.Records(ds)
		if err := writeFile(path, t.Header(), records); err != nil {
			return written, err
		}
		written = append(written, Written{Table: t.Name, Path: path, Rows: len(records)})
	}
	return written, nil
}

func writeFile(path string, header []string, records [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errorx.NewIOError("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errorx.NewIOError("close", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return errorx.NewIOError("write", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		return errorx.NewIOError("write", path, err)
	}
	return nil
}

// ReadCSV reads a directory written by WriteCSV back into a dataset. Every
// file must exist and carry the expected header.
func ReadCSV(dir string) (*model.Dataset, error) {
	ds := &model.Dataset{}
	for _, t := range Schema {
		if err := readFile(filepath.Join(dir, t.FileName()), t, ds); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func readFile(path string, t Table, ds *model.Dataset) error {
	f, err := os.Open(path)
	if err != nil {
		return errorx.NewIOError("open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(t.Columns)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: missing header", path)
		}
		return errorx.NewIOError("read", path, err)
	}
	if !slices.Equal(header, t.Header()) {
		return fmt.Errorf("%s: unexpected header %v, want %v", path, header, t.Header())
	}

	for line := 2; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errorx.NewIOError("read", path, err)
		}
		fs := &fields{rec: rec, cols: t.Columns}
		t.codec.decode(ds, fs)
		if fs.err != nil {
			return fmt.Errorf("%s line %d: %w", path, line, fs.err)
		}
	}
}
