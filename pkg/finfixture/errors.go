package finfixture

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrFixtureMismatch indicates a workbook whose content differs from the expected table.
var ErrFixtureMismatch = errors.New("fixture mismatch")

// GenerateError represents a failure to produce a fixture file.
type GenerateError struct {
	Path string
	Err  error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Path, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}
