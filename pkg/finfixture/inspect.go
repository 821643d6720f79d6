package finfixture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/finfixture-go/pkg/finfixture/models"
	"github.com/ukaji3/finfixture-go/pkg/finfixture/sheet"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// Inspect previews the first sheet of the workbook at path as header-keyed records.
func Inspect(path string, opts Options) (*models.Preview, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	columns, records, err := sheet.ExtractRecords(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	preview := &models.Preview{
		BookName:  filepath.Base(path),
		SheetName: sheetName,
		Columns:   []string{},
		Data:      records,
		RowCount:  len(records),
	}
	// Columns follow the first record, so leading blank cells drop out.
	if len(records) > 0 {
		preview.Columns = sheet.RecordColumns(columns, records[0])
	}
	if preview.Data == nil {
		preview.Data = []models.Record{}
	}

	used, ok, err := sheet.UsedRange(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if ok {
		preview.Bounds = used
		if preview.Range, err = sheet.FormatRange(used); err != nil {
			return nil, err
		}
	}

	if preview.TableCandidates, err = sheet.DetectTables(f, sheetName, sheet.DefaultTableParams()); err != nil {
		return nil, fmt.Errorf("failed to detect tables in %q: %w", sheetName, err)
	}

	opts.logger().Debug("Workbook inspected",
		zap.String("path", path),
		zap.String("sheet", sheetName),
		zap.String("range", preview.Range),
		zap.Int("row_count", preview.RowCount))
	return preview, nil
}

// Verify checks that the first sheet of the workbook at path holds exactly want:
// same used range (header plus one row per table row, one column per header)
// and the same title, headers, labels and amounts.
func Verify(path string, want *models.Table, opts Options) error {
	f, err := openWorkbook(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 {
		return fmt.Errorf("%w: workbook has %d sheets, want 1", ErrFixtureMismatch, len(sheets))
	}
	sheetName := f.GetSheetName(0)
	used, ok, err := sheet.UsedRange(f, sheetName)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if !ok {
		return fmt.Errorf("%w: sheet %q is empty", ErrFixtureMismatch, sheetName)
	}
	if expected := want.Bounds(); used != expected {
		return fmt.Errorf("%w: used range is %d rows x %d columns, want %d x %d",
			ErrFixtureMismatch, used.Rows(), used.Cols(), expected.Rows(), expected.Cols())
	}

	got, err := sheet.ReadTable(f, sheetName)
	if err != nil {
		return fmt.Errorf("failed to read table from %q: %w", sheetName, err)
	}
	if diff := want.Diff(got); diff != "" {
		return fmt.Errorf("%w: %s", ErrFixtureMismatch, diff)
	}

	opts.logger().Debug("Fixture verified", zap.String("path", path), zap.String("sheet", sheetName))
	return nil
}
