package composer

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewManifest_Defaults(t *testing.T) {
	t.Parallel()

	m := NewManifest("acme/project", `Acme\Project\`)

	if m.Name != "acme/project" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Type != "library" || m.License != "Apache-2.0" {
		t.Errorf("Type=%q License=%q", m.Type, m.License)
	}
	if got := m.Autoload.PSR4[`Acme\Project\`]; got != "src/" {
		t.Errorf("autoload psr-4 = %q, want src/", got)
	}
	if got := m.AutoloadDev.PSR4[`Acme\Project\`]; got != "tests/" {
		t.Errorf("autoload-dev psr-4 = %q, want tests/", got)
	}
	if m.MinimumStability != "dev" || !m.PreferStable {
		t.Errorf("MinimumStability=%q PreferStable=%v", m.MinimumStability, m.PreferStable)
	}
	if got := m.Extra.BranchAlias["dev-master"]; got != "0.x-dev" {
		t.Errorf("branch-alias = %q", got)
	}
	if c, _ := m.RequireDev.Get("phpunit/phpunit"); len(m.RequireDev) != 4 || c != "~4.8" {
		t.Errorf("RequireDev = %v", m.RequireDev)
	}
}

func TestNewManifest_DoesNotShareDefaults(t *testing.T) {
	t.Parallel()

	m := NewManifest("acme/project", `Acme\Project\`)
	m.RequireDev.Set("phpunit/phpunit", "^10")

	if c, _ := DefaultRequireDev.Get("phpunit/phpunit"); c != "~4.8" {
		t.Error("modifying a manifest changed DefaultRequireDev")
	}
}

func TestNewManifest_Options(t *testing.T) {
	t.Parallel()

	m := NewManifest("acme/project", `Acme\Project\`,
		WithLicense("MIT"),
		WithDescription("A library"),
		WithPHP(">=8.1"),
		WithAuthor("Jo Doe", "jo@example.com"),
		WithAuthor("", "ignored@example.com"),
	)

	if m.License != "MIT" {
		t.Errorf("License = %q, want MIT", m.License)
	}
	if m.Description != "A library" {
		t.Errorf("Description = %q", m.Description)
	}
	if c, _ := m.Require.Get("php"); c != ">=8.1" {
		t.Errorf("Require = %v", m.Require)
	}
	if len(m.Authors) != 1 || m.Authors[0].Email != "jo@example.com" {
		t.Errorf("Authors = %v", m.Authors)
	}

	empty := NewManifest("a/b", `A\B\`, WithLicense(""), WithPHP(""))
	if empty.License != DefaultLicense {
		t.Errorf("empty license should keep default, got %q", empty.License)
	}
	if len(empty.Require) != 0 {
		t.Errorf("empty constraint should add nothing, got %v", empty.Require)
	}
}

func TestManifest_Marshal(t *testing.T) {
	t.Parallel()

	data, err := NewManifest("acme/my-project", `Acme\My\Project\`).Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	out := string(data)

	if !strings.HasSuffix(out, "}\n") {
		t.Error("manifest should end with a newline")
	}
	if !strings.Contains(out, "\n  \"name\": \"acme/my-project\",\n") {
		t.Errorf("expected two-space indented name line, got:\n%s", out)
	}
	// Backslashes are JSON-escaped, slashes are not.
	if !strings.Contains(out, `"Acme\\My\\Project\\": "src/"`) {
		t.Errorf("autoload entry not found in:\n%s", out)
	}
	if !strings.Contains(out, `"authors": []`) || !strings.Contains(out, `"require": {}`) {
		t.Errorf("empty authors/require should be written as [] and {}:\n%s", out)
	}

	order := []string{`"name"`, `"description"`, `"type"`, `"license"`, `"authors"`, `"require"`,
		`"require-dev"`, `"autoload"`, `"autoload-dev"`, `"minimum-stability"`, `"prefer-stable"`, `"extra"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		if idx <= last {
			t.Errorf("key %s out of order", key)
		}
		last = idx
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	// require-dev keeps its listed order rather than sorting keys.
	wantDev := "\"require-dev\": {\n" +
		"    \"phpunit/phpunit\": \"~4.8\",\n" +
		"    \"squizlabs/php_codesniffer\": \"~2.3\",\n" +
		"    \"phing/phing\": \"~2.11\",\n" +
		"    \"satooshi/php-coveralls\": \"~0.7\"\n" +
		"  },"
	if !strings.Contains(out, wantDev) {
		t.Errorf("require-dev not in listed order:\n%s", out)
	}

	data, err = NewManifest("acme/x", `Acme\X\`, WithPHP(">=8.1")).Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), `"php": ">=8.1"`) {
		t.Errorf("php constraint should be written unescaped:\n%s", data)
	}
}

func TestRequirements_JSON(t *testing.T) {
	t.Parallel()

	in := `{"zeta/z":"^1","alpha/a":"~2","php":"^8.1"}`
	var r Requirements
	if err := json.Unmarshal([]byte(in), &r); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(r) != 3 || r[0].Package != "zeta/z" || r[2].Package != "php" {
		t.Fatalf("order not kept: %+v", r)
	}
	if c, ok := r.Get("alpha/a"); !ok || c != "~2" {
		t.Errorf("Get(alpha/a) = %q, %v", c, ok)
	}
	if _, ok := r.Get("missing/x"); ok {
		t.Error("Get(missing/x) should report absent")
	}

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(out) != in {
		t.Errorf("Marshal() = %s, want %s", out, in)
	}

	r = r.Set("alpha/a", "^3")
	if len(r) != 3 || r[1].Constraint != "^3" {
		t.Errorf("Set should replace in place: %+v", r)
	}

	if out, _ := json.Marshal(Requirements(nil)); string(out) != "{}" {
		t.Errorf("nil requirements = %s, want {}", out)
	}
	if err := json.Unmarshal([]byte(`["php"]`), &r); err == nil {
		t.Error("an array should be rejected")
	}
}

func TestValidatePackageName(t *testing.T) {
	t.Parallel()

	valid := []string{"acme/project", "acme-corp/my-project", "a/b"}
	for _, name := range valid {
		if err := ValidatePackageName(name); err != nil {
			t.Errorf("ValidatePackageName(%q) error: %v", name, err)
		}
	}

	invalid := []string{"", "acme", "/project", "acme/", "acme/pro/ject", "Acme/Project", "acme/my project"}
	for _, name := range invalid {
		if err := ValidatePackageName(name); !errors.Is(err, ErrInvalidPackageName) {
			t.Errorf("ValidatePackageName(%q) = %v, want ErrInvalidPackageName", name, err)
		}
	}
}

func TestValidateVendorName(t *testing.T) {
	t.Parallel()

	for _, vendor := range []string{"acme", "acme-corp", "a1"} {
		if err := ValidateVendorName(vendor); err != nil {
			t.Errorf("ValidateVendorName(%q) error: %v", vendor, err)
		}
	}

	for _, vendor := range []string{"", "Acme", "ac me", "acme/x"} {
		if err := ValidateVendorName(vendor); !errors.Is(err, ErrInvalidPackageName) {
			t.Errorf("ValidateVendorName(%q) = %v, want ErrInvalidPackageName", vendor, err)
		}
	}
}

func TestParseAuthor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Author
		wantErr bool
	}{
		{"Jo Doe <jo@example.com>", Author{Name: "Jo Doe", Email: "jo@example.com"}, false},
		{"  Jo Doe  ", Author{Name: "Jo Doe"}, false},
		{"", Author{}, true},
		{"<jo@example.com>", Author{}, true},
		{"Jo <not-an-address", Author{}, true},
	}
	for _, tt := range tests {
		got, err := ParseAuthor(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAuthor) {
				t.Errorf("ParseAuthor(%q) error = %v, want ErrInvalidAuthor", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseAuthor(%q) = %+v, %v, want %+v", tt.in, got, err, tt.want)
		}
	}
}
