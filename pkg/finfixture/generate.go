package finfixture

import (
	"github.com/ukaji3/finfixture-go/pkg/finfixture/models"
	"github.com/ukaji3/finfixture-go/pkg/finfixture/sheet"
	"go.uber.org/zap"
)

// Generator writes worksheet tables to xlsx files.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(opts Options) *Generator {
	return &Generator{logger: opts.logger()}
}

// Generate writes table to path, replacing any existing file.
// It returns the path written once the file is flushed, closed and in place.
func (g *Generator) Generate(table *models.Table, path string) (string, error) {
	path = outputPath(path)
	g.logger.Debug("Generating fixture",
		zap.String("path", path),
		zap.String("sheet", table.Title),
		zap.Int("rows", len(table.Rows)),
		zap.Int("periods", len(table.Periods())))

	if err := sheet.SaveTable(table, path); err != nil {
		g.logger.Error("Failed to generate fixture", zap.String("path", path), zap.Error(err))
		return "", &GenerateError{Path: path, Err: err}
	}

	g.logger.Info("Fixture written", zap.String("path", path), zap.String("sheet", table.Title))
	return path, nil
}

// Generate writes the finance fixture to path (DefaultOutputPath when empty).
func Generate(path string, opts Options) (string, error) {
	return NewGenerator(opts).Generate(Finances(), path)
}
