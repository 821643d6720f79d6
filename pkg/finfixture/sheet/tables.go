package sheet

import (
	"github.com/ukaji3/finfixture-go/pkg/finfixture/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// UsedRange returns the bounding box of non-empty cells in a sheet.
// ok is false for a sheet without any value.
func UsedRange(f *excelize.File, sheetName string) (b models.Bounds, ok bool, err error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Bounds{}, false, err
	}
	b, filled := scanCells(rows)
	return b, filled > 0, nil
}

// DetectTables detects table-like regions in a sheet.
// Returns a list of cell ranges (e.g., "A1:D8") that likely represent tables.
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	b, filled := scanCells(rows)
	if filled == 0 || filled < params.MinNonemptyCells {
		return nil, nil
	}
	if density := float64(filled) / float64(b.Rows()*b.Cols()); density < params.DensityMin {
		return nil, nil
	}

	rangeStr, err := FormatRange(b)
	if err != nil {
		return nil, err
	}
	return []string{rangeStr}, nil
}

// scanCells returns the 1-based bounds of the non-empty cells and how many there are.
// Every non-empty cell lies inside the bounds, so filled also counts the cells within them.
func scanCells(rows [][]string) (b models.Bounds, filled int) {
	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			rowNum, colNum := r+1, c+1
			if filled == 0 {
				b = models.Bounds{R1: rowNum, C1: colNum, R2: rowNum, C2: colNum}
			} else {
				b.R2 = rowNum // rows are visited in order
				b.C1 = min(b.C1, colNum)
				b.C2 = max(b.C2, colNum)
			}
			filled++
		}
	}
	return b, filled
}
