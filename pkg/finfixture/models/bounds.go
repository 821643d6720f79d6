package models

// Bounds represents cell coordinate bounds of a range.
type Bounds struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Rows returns the number of rows covered.
func (b Bounds) Rows() int {
	if b.R2 < b.R1 {
		return 0
	}
	return b.R2 - b.R1 + 1
}

// Cols returns the number of columns covered.
func (b Bounds) Cols() int {
	if b.C2 < b.C1 {
		return 0
	}
	return b.C2 - b.C1 + 1
}
