package dict

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/solversa/link-grammar/pkg/errors"
)

// Load decodes a marker table from TOML data. Fields absent from the
// document keep the English defaults, so a per-language file only needs
// to state what differs.
func Load(data []byte) (*Markers, error) {
	m := English()
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMarkers, err, "parse marker table")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile reads a marker table from a TOML file.
func LoadFile(path string) (*Markers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read marker table %s", path)
	}
	return Load(data)
}

// ByName returns a built-in preset by language name.
// Recognized names: "en", "english", "ru", "russian".
func ByName(name string) (*Markers, error) {
	switch name {
	case "", "en", "english":
		return English(), nil
	case "ru", "russian":
		return Russian(), nil
	}
	return nil, errors.New(errors.ErrCodeNotFound, "unknown dictionary %q", name)
}
