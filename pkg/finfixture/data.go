package finfixture

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/finfixture-go/pkg/finfixture/models"
)

// SheetName is the name of the single sheet in the fixture workbook.
const SheetName = "Finanze"

// financeRows is the literal fixture data: label followed by one amount per period.
var financeRows = []struct {
	label  string
	values [3]int64
}{
	{"Liquidi", [3]int64{1000, 1100, 950}},
	{"Banca", [3]int64{5000, 5200, 5100}},
	{"Credito", [3]int64{300, 350, 400}},
	{"Investimenti", [3]int64{10000, 10500, 11000}},
	{"Debito", [3]int64{-2000, -2100, -2000}},
	{"Finanziamento", [3]int64{-5000, -5000, -5000}},
	{"Totale", [3]int64{9300, 10050, 10450}},
}

// Finances returns the finance fixture table.
// Every call returns a fresh table the caller may modify.
func Finances() *models.Table {
	table := &models.Table{
		Title:   SheetName,
		Headers: []string{"Items", "gen-24", "feb-24", "mar-24"},
		Rows:    make([]models.Row, 0, len(financeRows)),
	}
	for _, r := range financeRows {
		values := make([]decimal.Decimal, len(r.values))
		for i, v := range r.values {
			values[i] = decimal.NewFromInt(v)
		}
		table.Rows = append(table.Rows, models.Row{Label: r.label, Values: values})
	}
	return table
}
