package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/mail"
	"slices"
	"strings"
)

// Default values written into every generated manifest.
const (
	DefaultLicense          = "Apache-2.0"
	DefaultType             = "library"
	DefaultMinimumStability = "dev"
	DefaultBranchAlias      = "0.x-dev"
)

// DefaultRequireDev lists the development dependencies every generated
// library starts with, in the order they are written: test runner, code
// sniffer, build tool and coverage reporter.
var DefaultRequireDev = Requirements{
	{Package: "phpunit/phpunit", Constraint: "~4.8"},
	{Package: "squizlabs/php_codesniffer", Constraint: "~2.3"},
	{Package: "phing/phing", Constraint: "~2.11"},
	{Package: "satooshi/php-coveralls", Constraint: "~0.7"},
}

// Manifest is the composer.json document. Field order matches the order
// keys are written in.
type Manifest struct {
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Type             string            `json:"type"`
	License          string            `json:"license"`
	Authors          []Author          `json:"authors"`
	Require          Requirements      `json:"require"`
	RequireDev       Requirements      `json:"require-dev"`
	Autoload         Autoload          `json:"autoload"`
	AutoloadDev      Autoload          `json:"autoload-dev"`
	MinimumStability string            `json:"minimum-stability"`
	PreferStable     bool              `json:"prefer-stable"`
	Extra            Extra             `json:"extra"`
}

// Author is one entry of the "authors" list.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Autoload maps PSR-4 namespace prefixes to directories.
type Autoload struct {
	PSR4 map[string]string `json:"psr-4"`
}

// Extra holds the "extra" section.
type Extra struct {
	BranchAlias map[string]string `json:"branch-alias"`
}

// ManifestOption configures a Manifest.
type ManifestOption func(*Manifest)

// NewManifest creates the manifest for package name with namespace as the
// PSR-4 prefix for src/ and tests/. namespace should carry its trailing
// separator.
func NewManifest(name, namespace string, opts ...ManifestOption) *Manifest {
	m := &Manifest{
		Name:        name,
		Type:        DefaultType,
		License:     DefaultLicense,
		Authors:     []Author{},
		Require:     Requirements{},
		RequireDev:  slices.Clone(DefaultRequireDev),
		Autoload:    Autoload{PSR4: map[string]string{namespace: "src/"}},
		AutoloadDev: Autoload{PSR4: map[string]string{namespace: "tests/"}},

		MinimumStability: DefaultMinimumStability,
		PreferStable:     true,
		Extra: Extra{
			BranchAlias: map[string]string{"dev-master": DefaultBranchAlias},
		},
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithLicense sets the SPDX license identifier. An empty value keeps the default.
func WithLicense(license string) ManifestOption {
	return func(m *Manifest) {
		if license != "" {
			m.License = license
		}
	}
}

// WithDescription sets the package description.
func WithDescription(description string) ManifestOption {
	return func(m *Manifest) {
		m.Description = description
	}
}

// WithPHP adds a "php" platform requirement. An empty constraint adds nothing.
// The constraint is expected to have passed ValidateConstraint.
func WithPHP(constraint string) ManifestOption {
	return func(m *Manifest) {
		if constraint != "" {
			m.Require = m.Require.Set("php", constraint)
		}
	}
}

// WithAuthor appends an author entry. An empty name adds nothing.
func WithAuthor(name, email string) ManifestOption {
	return func(m *Manifest) {
		if name != "" {
			m.Authors = append(m.Authors, Author{Name: name, Email: email})
		}
	}
}

// ParseAuthor reads an author given as "Name <email>" or just "Name".
func ParseAuthor(s string) (Author, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Author{}, fmt.Errorf("%w: empty author", ErrInvalidAuthor)
	}
	if !strings.ContainsAny(s, "<>") {
		return Author{Name: s}, nil
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name == "" {
		return Author{}, fmt.Errorf("%w: %q must look like \"Name <email>\"", ErrInvalidAuthor, s)
	}
	return Author{Name: addr.Name, Email: addr.Address}, nil
}

// Marshal encodes the manifest the way Composer itself writes it: two-space
// indentation, unescaped slashes and HTML characters, trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode composer.json: %w", err)
	}
	return buf.Bytes(), nil
}

// ValidatePackageName checks the "vendor/project" shape Composer requires.
// It does not enforce Composer's full naming grammar; users may pick any
// name the registry accepts.
func ValidatePackageName(name string) error {
	vendor, project, ok := strings.Cut(name, "/")
	if !ok || vendor == "" || project == "" || strings.Contains(project, "/") {
		return fmt.Errorf("%w: %q must have the form vendor/project", ErrInvalidPackageName, name)
	}
	if strings.ContainsFunc(name, isSpace) {
		return fmt.Errorf("%w: %q must not contain whitespace", ErrInvalidPackageName, name)
	}
	if name != strings.ToLower(name) {
		return fmt.Errorf("%w: %q must be lower case", ErrInvalidPackageName, name)
	}
	return nil
}

// ValidateVendorName checks a Composer vendor name, the part of a package
// name before the slash.
func ValidateVendorName(vendor string) error {
	if strings.Contains(vendor, "/") {
		return fmt.Errorf("%w: vendor %q must not contain a slash", ErrInvalidPackageName, vendor)
	}
	if err := ValidatePackageName(vendor + "/x"); err != nil {
		return fmt.Errorf("%w: vendor %q must be non-empty lower case without whitespace", ErrInvalidPackageName, vendor)
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
