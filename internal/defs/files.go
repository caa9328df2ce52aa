package defs

// Common file names used across the project.
const (
	// ComposerJSON is the Composer package manifest written into new projects.
	ComposerJSON = "composer.json"

	// SettingsJSON is the global settings file holding remembered answers.
	SettingsJSON = "settings.json"

	// AppDir is the directory under the user config dir owned by phpgen.
	AppDir = "phpgen"
)

// Directories created empty in every generated project.
const (
	SourceDir = "src"
	TestsDir  = "tests"
)

// Well-known keys in the global settings file.
const (
	// VendorMappingKey holds the PHP vendor namespace to Composer vendor slug mapping.
	VendorMappingKey = "vendor_php_to_composer_namespace_mapping"

	// LastVendorNamespaceKey holds the vendor namespace entered on the previous run.
	LastVendorNamespaceKey = "vendor_namespace"
)
