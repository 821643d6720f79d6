// Package output serializes fixture data for the command line.
package output

import (
	"encoding/json"

	"github.com/ukaji3/finfixture-go/pkg/finfixture/models"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// PreviewToJSON serializes an import preview.
func PreviewToJSON(p *models.Preview, pretty bool) ([]byte, error) {
	return ToJSON(p, pretty)
}
