package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/libforge/phpgen/internal/cli/wizard"
)

// maxAnswersSize bounds the answers file read into memory.
const maxAnswersSize = 1 << 20

// answersFile is the --answers YAML document. Question keys match the
// wizard question IDs.
type answersFile struct {
	wizard.Answers `yaml:",inline"`

	License     string   `yaml:"license"`
	Description string   `yaml:"description"`
	PHP         string   `yaml:"php"`
	Authors     []string `yaml:"authors"`
}

// loadAnswersFile reads a YAML answers file. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
func loadAnswersFile(path string) (*answersFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxAnswersSize+1))
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	if len(data) > maxAnswersSize {
		return nil, fmt.Errorf("answers file %s exceeds %d bytes", path, maxAnswersSize)
	}

	var af answersFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&af); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse answers file %s: %w", path, err)
	}
	return &af, nil
}
