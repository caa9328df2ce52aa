package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

// EmbeddedTemplates returns the project template tree rooted at its top
// directory.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return sub, nil
}
