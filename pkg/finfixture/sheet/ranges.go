package sheet

import (
	"fmt"
	"strings"

	"github.com/ukaji3/finfixture-go/pkg/finfixture/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range string like $A$1:$D$8 or 'Sheet'!A1:D8 to Bounds.
// A single cell reference yields a one-cell range.
func ParseRange(ref string) (models.Bounds, error) {
	rangeStr := ref
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Bounds{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Bounds{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Bounds{}, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	return models.Bounds{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// FormatRange renders bounds in A1 notation.
func FormatRange(b models.Bounds) (string, error) {
	startCell, err := excelize.CoordinatesToCellName(b.C1, b.R1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(b.C2, b.R2)
	if err != nil {
		return "", err
	}
	return startCell + ":" + endCell, nil
}
