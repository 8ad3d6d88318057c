// Package matrixio reads input matrices from files in TOML, YAML, JSON or
// plain whitespace-separated text.
package matrixio

import (
	"encoding/json"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/matrixlab/pkg/errors"
	"github.com/arthur-debert/matrixlab/pkg/matrix"
)

// document is the on-disk shape shared by the structured formats.
type document struct {
	Rows [][]int `toml:"rows" yaml:"rows" json:"rows"`
}

// Loader reads matrix files from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader returns a Loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// NewOSLoader returns a Loader reading from the real filesystem.
func NewOSLoader() *Loader {
	return NewLoader(afero.NewOsFs())
}

// Load reads path and parses it according to its extension.
func (l *Loader) Load(path string) (matrix.Matrix, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read matrix file %s", path).
			WithDetail("path", path)
	}

	m, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "invalid matrix file %s", path).
			WithDetail("path", path)
	}
	return m, nil
}

// Format identifies a matrix file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// FormatForPath picks a format from the file extension, defaulting to text.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Parse decodes data in the given format and validates the resulting matrix.
func Parse(data []byte, format Format) (matrix.Matrix, error) {
	var rows [][]int
	var err error

	switch format {
	case FormatTOML:
		var doc document
		err = toml.Unmarshal(data, &doc)
		rows = doc.Rows
	case FormatYAML:
		var doc document
		err = yaml.Unmarshal(data, &doc)
		rows = doc.Rows
	case FormatJSON:
		rows, err = parseJSON(data)
	default:
		return ParseText(string(data))
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot decode %s matrix", format)
	}

	return matrix.FromRows(rows)
}

// parseJSON accepts either {"rows": [[...]]} or a bare [[...]].
func parseJSON(data []byte) ([][]int, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var rows [][]int
		err := json.Unmarshal(data, &rows)
		return rows, err
	}

	var doc document
	err := json.Unmarshal(data, &doc)
	return doc.Rows, err
}

// ParseText reads one row per line. Blank lines and lines starting with #
// are skipped.
func ParseText(text string) (matrix.Matrix, error) {
	var rows [][]int
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row, err := ParseRow(line, -1)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "line %d", n+1).
				WithDetail("line", n+1)
		}
		rows = append(rows, row)
	}

	return matrix.FromRows(rows)
}
