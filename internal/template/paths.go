package template

import (
	"path"
	"strings"
)

const (
	templateSuffix = ".tmpl"
	dotPrefix      = "dot-"
)

// executablePaths lists deployed files that get the executable bit.
var executablePaths = map[string]bool{
	"contrib/pre-commit": true,
}

// TargetPath maps a template path to the path it is deployed to: the
// ".tmpl" suffix is dropped and a "dot-" prefix on any element becomes a
// leading dot, so "dot-gitignore" is written as ".gitignore". Dotfiles are
// kept out of the template tree itself so they do not affect this
// repository's own tooling.
func TargetPath(templatePath string) string {
	p := strings.TrimSuffix(templatePath, templateSuffix)
	parts := strings.Split(p, "/")
	for i, part := range parts {
		if rest, ok := strings.CutPrefix(part, dotPrefix); ok && rest != "" {
			parts[i] = "." + rest
		}
	}
	return path.Join(parts...)
}

// isTemplate reports whether the file must be rendered before deployment.
func isTemplate(templatePath string) bool {
	return strings.HasSuffix(templatePath, templateSuffix)
}

// isExecutable reports whether the deployed file needs the executable bit.
func isExecutable(target string) bool {
	return executablePaths[target] || strings.HasSuffix(target, ".sh")
}
