package legparser

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(format) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown leg format %s", format)
	}
}

func FormatFromFilename(filename string) (Format, error) {
	extension := strings.TrimPrefix(filepath.Ext(filename), ".")
	if extension == "" {
		return "", fmt.Errorf("cannot determine leg format of %s", filename)
	}

	return ParseFormat(extension)
}

// Decode reads a list of leg records in the given format
func Decode(reader io.Reader, format Format) ([]LegRecord, error) {
	var records []LegRecord

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(reader).Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding json legs: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(reader).Decode(&records); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding yaml legs: %w", err)
		}
	case FormatCSV:
		var rows []*csvRecord
		if err := gocsv.Unmarshal(reader, &rows); err != nil {
			return nil, fmt.Errorf("decoding csv legs: %w", err)
		}

		for _, row := range rows {
			records = append(records, row.toLegRecord())
		}
	default:
		return nil, fmt.Errorf("unknown leg format %s", format)
	}

	return records, nil
}
