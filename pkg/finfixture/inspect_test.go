package finfixture

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/finfixture-go/pkg/finfixture/models"
	"github.com/xuri/excelize/v2"
)

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_import.xlsx")
	_, err := Generate(path, DefaultOptions())
	require.NoError(t, err)

	preview, err := Inspect(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "test_import.xlsx", preview.BookName)
	assert.Equal(t, "Finanze", preview.SheetName)
	assert.Equal(t, "A1:D8", preview.Range)
	assert.Equal(t, models.Bounds{R1: 1, C1: 1, R2: 8, C2: 4}, preview.Bounds)
	assert.Equal(t, []string{"A1:D8"}, preview.TableCandidates)
	assert.Equal(t, []string{"Items", "gen-24", "feb-24", "mar-24"}, preview.Columns)
	assert.Equal(t, 7, preview.RowCount)
	require.Len(t, preview.Data, 7)
	assert.Equal(t, models.Record{
		"Items": "Debito", "gen-24": int64(-2000), "feb-24": int64(-2100), "mar-24": int64(-2000),
	}, preview.Data[4])
}

func TestInspectEmptyWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	preview, err := Inspect(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", preview.SheetName)
	assert.Empty(t, preview.Range)
	assert.Equal(t, 0, preview.RowCount)
	assert.NotNil(t, preview.Columns)
	assert.NotNil(t, preview.Data)
}

func TestInspectSparseSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "lonely"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	preview, err := Inspect(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "B2:B2", preview.Range)
	assert.Equal(t, models.Bounds{R1: 2, C1: 2, R2: 2, C2: 2}, preview.Bounds)
	assert.Empty(t, preview.TableCandidates)
}

func TestInspectColumnsFromFirstRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gaps.xlsx")
	f := excelize.NewFile()
	for cell, v := range map[string]interface{}{
		"A1": "Items", "B1": "jan", "C1": "feb",
		"B2": 1, "C2": 2,
		"A3": "Bank", "B3": 3, "C3": 4,
	} {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	preview, err := Inspect(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"jan", "feb"}, preview.Columns)
	assert.Equal(t, 2, preview.RowCount)
	assert.Equal(t, "Bank", preview.Data[1]["Items"])
}

func TestInspectMissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestVerifyMismatch(t *testing.T) {
	tests := []struct {
		name    string
		table   func() *models.Table
		wantMsg string
	}{
		{
			name: "changed amount",
			table: func() *models.Table {
				table := Finances()
				table.Rows[2].Values[1] = decimal.NewFromInt(351)
				return table
			},
			wantMsg: "row 3 (Credito) feb-24: 350 != 351",
		},
		{
			name: "extra row",
			table: func() *models.Table {
				table := Finances()
				table.Rows = append(table.Rows, table.Rows[0])
				return table
			},
			wantMsg: "used range is 9 rows x 4 columns, want 8 x 4",
		},
		{
			name: "renamed sheet",
			table: func() *models.Table {
				table := Finances()
				table.Title = "Finances"
				return table
			},
			wantMsg: `title "Finanze" != "Finances"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fixture.xlsx")
			_, err := NewGenerator(DefaultOptions()).Generate(tt.table(), path)
			require.NoError(t, err)

			err = Verify(path, Finances(), DefaultOptions())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFixtureMismatch))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestVerifyExtraSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	_, err := Generate(path, DefaultOptions())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	_, err = f.NewSheet("Notes")
	require.NoError(t, err)
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	err = Verify(path, Finances(), DefaultOptions())
	assert.ErrorIs(t, err, ErrFixtureMismatch)
	assert.Contains(t, err.Error(), "2 sheets")
}
