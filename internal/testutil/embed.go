package testutil

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Case is one entry of a YAML case table. Error is a substring expected in
// the failure message; it is empty for inputs that must load.
type Case struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	Error string `yaml:"error"`
}

// ReadCases decodes the embedded YAML case table name.
func ReadCases(name string) ([]Case, error) {
	data, err := ReadTestData(name)
	if err != nil {
		return nil, err
	}
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to decode case table '%s': %w", name, err)
	}
	return cases, nil
}
