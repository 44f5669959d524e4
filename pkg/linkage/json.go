package linkage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Linkage Serialization API
// =============================================================================

// MarshalLinkage converts a linkage to JSON bytes.
func MarshalLinkage(lk *Linkage) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeLinkageTo(lk, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLinkageFile writes a linkage to a JSON file.
// The file is created with 0644 permissions.
func WriteLinkageFile(lk *Linkage, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeLinkageTo(lk, f)
}

// WriteLinkage writes a linkage as JSON to an io.Writer.
// Use MarshalLinkage for in-memory serialization or WriteLinkageFile for files.
func WriteLinkage(lk *Linkage, w io.Writer) error {
	return writeLinkageTo(lk, w)
}

// ReadLinkageFile reads a JSON file and returns the decoded linkage.
// Returns validation errors for malformed documents.
func ReadLinkageFile(path string) (*Linkage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readLinkageFrom(f)
}

// ReadLinkage decodes a JSON linkage from an io.Reader.
// Use ReadLinkageFile for files or pass bytes.NewReader for in-memory data.
func ReadLinkage(r io.Reader) (*Linkage, error) {
	return readLinkageFrom(r)
}

// ReadLinkages decodes one or several linkages: the document may be a
// single linkage object or a JSON array of them. Parsers commonly emit
// every linkage found for a sentence; the viewer pages through them.
func ReadLinkages(r io.Reader) ([]*Linkage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var lks []*Linkage
		if err := json.Unmarshal(data, &lks); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		for _, lk := range lks {
			if err := lk.Validate(); err != nil {
				return nil, err
			}
		}
		return lks, nil
	}
	lk, err := readLinkageFrom(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return []*Linkage{lk}, nil
}

// ReadLinkagesFile reads a file holding one linkage or an array of them.
func ReadLinkagesFile(path string) ([]*Linkage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLinkages(f)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeLinkageTo(lk *Linkage, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lk); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readLinkageFrom(r io.Reader) (*Linkage, error) {
	var lk Linkage
	if err := json.NewDecoder(r).Decode(&lk); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := lk.Validate(); err != nil {
		return nil, err
	}
	return &lk, nil
}
