package matrix

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a score matrix from path, dispatching on the file extension:
// .csv, .json, or .yaml/.yml.
func Load(path string) (*Matrix, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported score matrix format: %s", filepath.Ext(path))
	}
}

// LoadCSV reads an NxN matrix of floats with no header row.
func LoadCSV(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open score matrix: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse score matrix csv: %w", err)
	}

	rows := make([][]float64, len(records))
	for i, record := range records {
		rows[i] = make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("parse score at row %d col %d: %w", i, j, err)
			}
			rows[i][j] = v
		}
	}
	return FromRows(rows)
}

// LoadJSON reads a matrix serialized as a JSON array of rows.
func LoadJSON(path string) (*Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read score matrix: %w", err)
	}
	var rows [][]float64
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse score matrix json: %w", err)
	}
	return FromRows(rows)
}

// LoadYAML reads a matrix serialized as a YAML sequence of rows.
func LoadYAML(path string) (*Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read score matrix: %w", err)
	}
	var rows [][]float64
	if err := yaml.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse score matrix yaml: %w", err)
	}
	return FromRows(rows)
}
