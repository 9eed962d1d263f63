package edgelist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// WriteJSON encodes doc as indented JSON. Infinite weights cannot be
// represented in JSON and make the encoder fail; use TOML or YAML for them.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteTOML encodes doc as TOML.
func WriteTOML(w io.Writer, doc Document) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

// WriteYAML encodes doc as YAML with two-space indentation.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// Write encodes doc to w in format f.
func Write(w io.Writer, doc Document, f Format) error {
	switch f {
	case JSON:
		return WriteJSON(w, doc)
	case TOML:
		return WriteTOML(w, doc)
	case YAML:
		return WriteYAML(w, doc)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Export writes doc to a file at path, choosing the codec from its extension.
func Export(path string, doc Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	return Write(file, doc, f)
}
