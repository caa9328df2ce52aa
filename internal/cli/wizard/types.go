// Package wizard asks for the answers phpgen needs to scaffold a library:
// vendor namespace, project namespace, Composer vendor and package name.
package wizard

import "errors"

// Question IDs. They double as answers file keys.
const (
	QuestionVendorNamespace  = "vendor_namespace"
	QuestionProjectNamespace = "project_namespace"
	QuestionVendorSlug       = "vendor_composer_namespace"
	QuestionPackageName      = "composer_package_name"
)

// Answers holds the values collected for one generation.
type Answers struct {
	VendorNamespace  string `yaml:"vendor_namespace"`
	ProjectNamespace string `yaml:"project_namespace"`
	VendorSlug       string `yaml:"vendor_composer_namespace"`
	PackageName      string `yaml:"composer_package_name"`
}

// Get returns the answer stored for a question ID.
func (a *Answers) Get(id string) string {
	switch id {
	case QuestionVendorNamespace:
		return a.VendorNamespace
	case QuestionProjectNamespace:
		return a.ProjectNamespace
	case QuestionVendorSlug:
		return a.VendorSlug
	case QuestionPackageName:
		return a.PackageName
	}
	return ""
}

// Set stores an answer for a question ID. Unknown IDs are ignored.
func (a *Answers) Set(id, value string) {
	switch id {
	case QuestionVendorNamespace:
		a.VendorNamespace = value
	case QuestionProjectNamespace:
		a.ProjectNamespace = value
	case QuestionVendorSlug:
		a.VendorSlug = value
	case QuestionPackageName:
		a.PackageName = value
	}
}

// Merge fills the empty fields of a from other.
func (a *Answers) Merge(other Answers) {
	for _, id := range questionOrder {
		if a.Get(id) == "" {
			a.Set(id, other.Get(id))
		}
	}
}

// Question defines a single wizard question.
type Question struct {
	ID          string             // Unique identifier
	Title       string             // Question title
	Description string             // Additional description
	Required    bool               // Whether an answer is mandatory
	Validate    func(string) error // Optional check applied to the final answer
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard: cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("wizard: no questions provided")
	// ErrMissingAnswer is returned when a required answer is absent and
	// cannot be prompted for.
	ErrMissingAnswer = errors.New("wizard: missing answer")
)
