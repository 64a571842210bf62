// Package dataload reads NAV and dividend records from JSON or YAML files.
package dataload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/api/request"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"gopkg.in/yaml.v3"
)

// ReadNavRecords reads the NAV records of a .json, .yaml or .yml file.
func ReadNavRecords(path string) ([]request.NavRecord, error) {
	var records []request.NavRecord
	if err := readFile(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadDividendRecords reads the dividend records of a .json, .yaml or .yml file.
func ReadDividendRecords(path string) ([]request.DividendRecord, error) {
	var records []request.DividendRecord
	if err := readFile(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func readFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := Decode(filepath.Ext(path), data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// Decode unmarshals data according to a file extension. Unknown fields are
// rejected so that misspelled keys do not silently load as zero values.
func Decode(ext string, data []byte, out any) error {
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(out)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(out)
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFormat, ext)
	}
}
