package sheet

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/finfixture-go/pkg/finfixture/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a worksheet table back from a sheet.
// Row 1 is the header; every following non-blank row is a label plus one amount per period.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptySheet
	}

	table := &models.Table{
		Title:   sheetName,
		Headers: append([]string(nil), rows[0]...),
	}
	periods := len(table.Headers) - 1

	for rowIdx, cells := range rows[1:] {
		if isBlank(cells) {
			continue
		}
		rowNum := rowIdx + 2
		row := models.Row{Label: cells[0], Values: make([]decimal.Decimal, periods)}
		for p := 0; p < periods; p++ {
			colIdx := p + 1
			raw := ""
			if colIdx < len(cells) {
				raw = strings.TrimSpace(cells[colIdx])
			}
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
				return nil, &CellError{Sheet: sheetName, Cell: cell, Value: raw}
			}
			row.Values[p] = amount
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
