// internal/catalog/load.go
//
// Catalog loading from the embedded default or a file on disk.
//
// Behavior (Load):
//   1. If path is empty, parse the embedded assets/pokemon.json.
//   2. Otherwise read the file and pick the decoder by extension:
//      .json → JSON, .yaml/.yml → YAML. Anything else is rejected.
//
// Catalog-load failure is fatal for the caller: no session can start
// without at least one entity.

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/pokedle/apps/go-server/assets"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format identifies a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Load returns the catalog at path, or the embedded default when path is "".
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	data, err := assets.CatalogJSON()
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return Parse(data, FormatJSON)
}

// LoadFile reads and parses a catalog file; the format follows the extension.
func LoadFile(path string) (*Catalog, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data, format)
}

// Parse decodes a list of records and builds a validated Catalog.
func Parse(data []byte, format Format) (*Catalog, error) {
	var records []EntityRecord
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode json catalog: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	return New(records)
}

func formatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported catalog file %s (want .json, .yaml or .yml)", path)
}
