package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DerivePackageName suggests a Composer package name "vendor/project" from a
// vendor slug and a project namespace. Both parts are lower-cased and nested
// project levels are joined with hyphens, so ("Acme", `My\Project`) becomes
// "acme/my-project".
//
// The result is only a default offered to the user, who may replace it.
func DerivePackageName(vendorSlug, projectNamespace string) string {
	project := strings.ReplaceAll(lower(projectNamespace), Separator, "-")
	return lower(vendorSlug) + "/" + project
}

// lower applies Unicode lower-casing. A cases.Caser keeps state between
// calls, so a fresh one is created each time.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
