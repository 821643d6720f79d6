package sheet

import (
	"errors"
	"fmt"
)

// ErrEmptySheet indicates a sheet without a header row.
var ErrEmptySheet = errors.New("sheet has no header row")

// WriteError represents a failure while persisting a workbook to disk.
type WriteError struct {
	Path string
	Op   string // "create", "encode", "sync", "close", "chmod", "rename"
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s (%s): %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// CellError represents a cell whose content cannot be read as an amount.
type CellError struct {
	Sheet string
	Cell  string
	Value string
}

func (e *CellError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("sheet %q cell %s: missing amount", e.Sheet, e.Cell)
	}
	return fmt.Sprintf("sheet %q cell %s: %q is not an amount", e.Sheet, e.Cell, e.Value)
}
