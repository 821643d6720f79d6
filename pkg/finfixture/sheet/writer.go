package sheet

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/finfixture-go/pkg/finfixture/models"
	"github.com/xuri/excelize/v2"
)

// NewWorkbook builds an in-memory workbook holding the table on a single sheet named after its title.
// The header goes to row 1 and data rows follow from row 2 in table order.
// The caller must Close the returned file.
func NewWorkbook(table *models.Table) (*excelize.File, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), table.Title); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(table.Title, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, 0, 1+len(row.Values))
		cells = append(cells, row.Label)
		for _, v := range row.Values {
			cells = append(cells, cellAmount(v))
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(table.Title, cell, &cells); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %q: %w", row.Label, err)
		}
	}

	return f, nil
}

// cellAmount returns an integer for whole amounts so they are stored without a fraction.
func cellAmount(v decimal.Decimal) interface{} {
	if v.IsInteger() && v.Equal(decimal.NewFromInt(v.IntPart())) {
		return v.IntPart()
	}
	return v.InexactFloat64()
}

// WriteTable encodes the table as an xlsx workbook to w.
func WriteTable(table *models.Table, w io.Writer) error {
	f, err := NewWorkbook(table)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// SaveTable writes the table to path, replacing any existing file.
// The workbook is written to a temporary file next to path and renamed into place
// once it has been flushed and closed, so path never holds a partial workbook.
// A replaced file keeps its permissions; a new one gets 0666 less the umask.
func SaveTable(table *models.Table, path string) (err error) {
	if err := table.Validate(); err != nil {
		return err
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := createTemp(dir, base)
	if err != nil {
		return &WriteError{Path: path, Op: "create", Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := WriteTable(table, tmp); err != nil {
		return &WriteError{Path: path, Op: "encode", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &WriteError{Path: path, Op: "sync", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: path, Op: "close", Err: err}
	}
	if info, statErr := os.Stat(path); statErr == nil && info.Mode().IsRegular() {
		if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
			return &WriteError{Path: path, Op: "chmod", Err: err}
		}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &WriteError{Path: path, Op: "rename", Err: err}
	}
	return nil
}

// createTemp creates a hidden temporary file in dir. Unlike os.CreateTemp it
// opens with 0666 so the process umask decides the final permissions.
func createTemp(dir, base string) (*os.File, error) {
	for i := 0; ; i++ {
		name := filepath.Join(dir, "."+base+"."+strconv.FormatUint(rand.Uint64(), 36)+".tmp")
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if errors.Is(err, fs.ErrExist) && i < 100 {
			continue
		}
		return f, err
	}
}
