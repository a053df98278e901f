package internal

import (
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"
)

// Manifest describes a generator run.
type Manifest struct {
	Version     string       `json:"version" yaml:"version"`
	Packages    []*Package   `json:"packages" yaml:"packages"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

func (m *Manifest) Marshal() ([]byte, error) {
	if m.Diagnostics == nil {
		m.Diagnostics = []Diagnostic{}
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(m, "", "  ")
}

// YAML renders the manifest as YAML.
func (m *Manifest) YAML() ([]byte, error) {
	if m.Diagnostics == nil {
		m.Diagnostics = []Diagnostic{}
	}
	return yaml.Marshal(m)
}

// Write stores the manifest, as YAML if filename ends in .yaml or .yml and as
// JSON otherwise.
func (m *Manifest) Write(filename string) error {
	marshal := m.Marshal
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		marshal = m.YAML
	}
	data, err := marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
