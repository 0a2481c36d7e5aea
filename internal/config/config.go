// Package config loads optional search defaults from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfig is wrapped by every error returned from Load.
var ErrConfig = errors.New("configuration error")

// File holds the defaults a config file may provide. Nil fields were not set.
type File struct {
	// Date is the target date in YYYY-MM-DD form
	Date *string `yaml:"date"`

	// Suffix is the file name tail to match; an empty string matches every file
	Suffix *string `yaml:"suffix"`

	// Root is the directory to search from
	Root *string `yaml:"root"`

	// FollowSymlinks resolves symlinks during traversal
	FollowSymlinks *bool `yaml:"follow_symlinks"`
}

// Load reads and decodes the YAML file at path. Unknown keys are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %w", ErrConfig, err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to parse config file %s: %w", ErrConfig, path, err)
	}
	return &f, nil
}
