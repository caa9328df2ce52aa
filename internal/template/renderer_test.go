package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"build.xml.tmpl": &fstest.MapFile{
				Data: []byte(`<project name="{{.ProjectNamespace}}" />`),
			},
		}
		r := NewRenderer(fs)

		result, err := r.Render("build.xml.tmpl", NewTemplateContext(WithNamespaces("Acme", "Http")))
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := `<project name="Http" />`
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("Hello {{.Name}}, your role is {{.Role}}"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"Name": "Acme"})
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nonexistent.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		fs := fstest.MapFS{
			"broken.tmpl": &fstest.MapFile{Data: []byte("{{.Name")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("broken.tmpl", nil)
		if err == nil || !strings.Contains(err.Error(), "template parse") {
			t.Errorf("expected parse error, got: %v", err)
		}
	})

	t.Run("unexpanded_token_in_output", func(t *testing.T) {
		fs := fstest.MapFS{
			"leak.tmpl": &fstest.MapFile{Data: []byte("value: {{.Raw}}")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("leak.tmpl", map[string]string{"Raw": "{{.Secret}}"})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("phing_properties_allowed", func(t *testing.T) {
		fs := fstest.MapFS{
			"build.tmpl": &fstest.MapFile{
				Data: []byte(`<property name="dir" value="${project.basedir}/build" /><mkdir dir="${builddir}" />`),
			},
		}
		r := NewRenderer(fs)

		if _, err := r.Render("build.tmpl", nil); err != nil {
			t.Errorf("phing properties should pass through, got: %v", err)
		}
	})
}

func TestTemplateFuncs(t *testing.T) {
	fs := fstest.MapFS{
		"funcs.tmpl": &fstest.MapFile{
			Data: []byte(`{{.Name | xmlEscape}}`),
		},
	}
	r := NewRenderer(fs)

	result, err := r.Render("funcs.tmpl", map[string]string{"Name": `A&B<C>\D`})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	want := `A&amp;B&lt;C&gt;\D`
	if string(result) != want {
		t.Errorf("Render result = %q, want %q", string(result), want)
	}
}
