package edgelist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ReadJSON decodes a JSON document from r. Unknown fields are rejected.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode json: %w", err)
	}
	return doc, nil
}

// ReadTOML decodes a TOML document from r. Keys that map to no field are
// rejected.
func ReadTOML(r io.Reader) (Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return Document{}, fmt.Errorf("decode toml: %w", err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		return Document{}, fmt.Errorf("decode toml: unknown keys %v", extra)
	}
	return doc, nil
}

// ReadYAML decodes a YAML document from r. Unknown fields are rejected.
func ReadYAML(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode yaml: %w", err)
	}
	return doc, nil
}

// Read decodes a document from r in format f.
func Read(r io.Reader, f Format) (Document, error) {
	switch f {
	case JSON:
		return ReadJSON(r)
	case TOML:
		return ReadTOML(r)
	case YAML:
		return ReadYAML(r)
	default:
		return Document{}, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Import reads the file at path, choosing the codec from its extension.
// The error wraps the underlying cause with the file path for context.
func Import(path string) (Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	doc, err := Read(file, f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
