// SPDX-License-Identifier: MIT

// Package matfile reads and writes matrix documents.
//
// A document holds one matrix as a list of rows of exact numbers written as
// text ("3", "-1/2", "0.25"):
//
//	rows:
//	  - ["1", "1/2"]
//	  - ["0", "-3"]
//
// The same document in TOML is rows = [["1", "1/2"], ["0", "-3"]]; TOML
// integers and floats are accepted as well. The format is chosen by file
// extension.
package matfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/exact/bignum"
	"github.com/katalvlaran/exact/matrix"
)

var (
	// ErrUnsupportedFormat indicates an unknown file extension.
	ErrUnsupportedFormat = errors.New("matfile: unsupported format")

	// ErrEmptyMatrix indicates a document without rows or with an empty row.
	ErrEmptyMatrix = errors.New("matfile: empty matrix")
)

// Format selects the document encoding.
type Format int

const (
	YAML Format = iota
	TOML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// FormatOf picks the format from the extension of path:
// .yaml and .yml are YAML, .toml is TOML.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Document is the serialized form of a matrix.
type Document struct {
	Rows [][]string `yaml:"rows" toml:"rows"`
}

// tomlDocument lets TOML rows mix strings with native numbers.
type tomlDocument struct {
	Rows [][]any `toml:"rows"`
}

// Load opens path and decodes it in the format implied by its extension.
func Load(path string) (*matrix.Dense, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Decode reads one document from r.
//
// Errors:
//   - ErrEmptyMatrix when there are no rows or a row has no entries.
//   - bignum.ErrSyntax / bignum.ErrDivisionByZero for a bad entry, prefixed
//     with its (row, col) position.
//   - matrix.ErrDimensionMismatch for ragged rows.
//   - Decoder errors from yaml.v3 or toml are returned wrapped.
func Decode(r io.Reader, format Format) (*matrix.Dense, error) {
	var doc Document
	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("matfile: yaml: %w", err)
		}
	case TOML:
		var raw tomlDocument
		if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("matfile: toml: %w", err)
		}
		rows, err := textRows(raw.Rows)
		if err != nil {
			return nil, err
		}
		doc.Rows = rows
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	}

	return doc.Matrix()
}

// Matrix parses every entry of d into a *matrix.Dense.
func (d Document) Matrix() (*matrix.Dense, error) {
	if len(d.Rows) == 0 {
		return nil, ErrEmptyMatrix
	}
	rows := make([][]bignum.Number, len(d.Rows))
	for i, row := range d.Rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("row %d: %w", i, ErrEmptyMatrix)
		}
		rows[i] = make([]bignum.Number, len(row))
		for j, text := range row {
			v, err := bignum.ParseNumber(text)
			if err != nil {
				return nil, fmt.Errorf("matfile: (%d,%d): %w", i, j, err)
			}
			rows[i][j] = v
		}
	}

	return matrix.NewDenseFrom(rows)
}

// FromMatrix renders m as a document of exact fractions.
func FromMatrix(m matrix.Matrix) (Document, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Document{}, err
	}
	doc := Document{Rows: make([][]string, m.Rows())}
	for i := range doc.Rows {
		doc.Rows[i] = make([]string, m.Cols())
		for j := range doc.Rows[i] {
			v, err := m.At(i, j)
			if err != nil {
				return Document{}, err
			}
			doc.Rows[i][j] = v.String()
		}
	}

	return doc, nil
}

// Encode writes m to w as a single document.
func Encode(w io.Writer, format Format, m matrix.Matrix) error {
	doc, err := FromMatrix(m)
	if err != nil {
		return err
	}
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err != nil {
			return fmt.Errorf("matfile: yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		if err = toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("matfile: toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	}
}

// Save writes m to path in the format implied by its extension.
func Save(path string, m matrix.Matrix) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Encode(f, format, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func textRows(raw [][]any) ([][]string, error) {
	rows := make([][]string, len(raw))
	for i, row := range raw {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			switch x := v.(type) {
			case string:
				rows[i][j] = x
			case int64:
				rows[i][j] = strconv.FormatInt(x, 10)
			case float64:
				rows[i][j] = strconv.FormatFloat(x, 'f', -1, 64)
			default:
				return nil, fmt.Errorf("matfile: (%d,%d): unexpected %T: %w", i, j, v, bignum.ErrSyntax)
			}
		}
	}

	return rows, nil
}
