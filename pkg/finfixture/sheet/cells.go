// Package sheet reads and writes worksheet tables as xlsx workbooks.
package sheet

import (
	"strconv"

	"github.com/ukaji3/finfixture-go/pkg/finfixture/models"
	"github.com/xuri/excelize/v2"
)

// emptyHeader keys values found under a blank header cell.
const emptyHeader = "__EMPTY"

// ExtractRecords converts a sheet into header-keyed records.
// The first row supplies the keys; columns beyond it are keyed __EMPTY, __EMPTY_1...
// once for the whole sheet. Blank rows below the header are skipped.
func ExtractRecords(f *excelize.File, sheetName string) (columns []string, records []models.Record, err error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	header := make([]string, width)
	copy(header, rows[0])
	columns = headerKeys(header)

	for _, row := range rows[1:] {
		record := make(models.Record)
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			record[columns[colIdx]] = parseValue(cellValue)
		}
		if len(record) > 0 {
			records = append(records, record)
		}
	}

	return columns, records, nil
}

// RecordColumns returns the keys present in record, in column order.
func RecordColumns(columns []string, record models.Record) []string {
	keys := make([]string, 0, len(record))
	for _, key := range columns {
		if _, ok := record[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// headerKeys turns the header row into unique record keys.
// Blank headers become __EMPTY and repeated labels get a _1, _2... suffix.
func headerKeys(header []string) []string {
	keys := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, label := range header {
		if label == "" {
			label = emptyHeader
		}
		key := label
		for n := 1; seen[key]; n++ {
			key = label + "_" + strconv.Itoa(n)
		}
		seen[key] = true
		keys[i] = key
	}
	return keys
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
