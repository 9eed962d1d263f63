package edgelist

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat indicates a format name or file extension that has no codec.
var ErrUnknownFormat = errors.New("edgelist: unknown format")

// Format selects a serialization.
type Format int

const (
	// JSON is encoding/json with two-space indentation.
	JSON Format = iota
	// TOML is a top-level mode key plus [[edges]] tables.
	TOML
	// YAML is a mapping with mode and a list of edges.
	YAML
)

var formatNames = map[Format]string{
	JSON: "json",
	TOML: "toml",
	YAML: "yaml",
}

var formatFromExt = map[string]Format{
	".json": JSON,
	".toml": TOML,
	".yaml": YAML,
	".yml":  YAML,
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatFromExt[ext]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}
