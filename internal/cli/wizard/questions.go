package wizard

import (
	"fmt"
	"strings"

	"github.com/libforge/phpgen/internal/composer"
	"github.com/libforge/phpgen/internal/core/naming"
)

// questionOrder is the order questions are asked in. Later defaults are
// derived from earlier answers.
var questionOrder = []string{
	QuestionVendorNamespace,
	QuestionVendorSlug,
	QuestionProjectNamespace,
	QuestionPackageName,
}

// Defaults carries the persisted values defaults are computed from.
type Defaults struct {
	LastVendor string               // Vendor namespace entered on the previous run.
	Mapping    naming.VendorMapping // Remembered Composer vendor per vendor namespace.
}

// DefaultQuestions returns the phpgen questions in asking order.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:          QuestionVendorNamespace,
			Title:       "PHP vendor namespace",
			Description: `The top-level namespace of your code, e.g. "Acme".`,
			Required:    true,
			Validate:    naming.ValidateNamespaceSegment,
		},
		{
			ID:          QuestionVendorSlug,
			Title:       "Composer vendor name",
			Description: "The vendor part of the Composer package name. Remembered for this namespace.",
			Required:    true,
			Validate:    composer.ValidateVendorName,
		},
		{
			ID:          QuestionProjectNamespace,
			Title:       "PHP project namespace",
			Description: `The namespace below the vendor, e.g. "Http" or "Http\Client".`,
			Required:    true,
			Validate:    naming.ValidateNamespaceSegment,
		},
		{
			ID:          QuestionPackageName,
			Title:       "Composer package name",
			Description: "The full vendor/project name published to Packagist.",
			Required:    true,
			Validate:    composer.ValidatePackageName,
		},
	}
}

// ResolveDefault computes the default for question id from the answers
// collected so far. It is a pure function of its inputs.
func ResolveDefault(id string, a Answers, d Defaults) string {
	switch id {
	case QuestionVendorNamespace:
		return d.LastVendor
	case QuestionVendorSlug:
		if a.VendorNamespace == "" {
			return ""
		}
		return naming.DefaultVendorSlug(d.Mapping, a.VendorNamespace)
	case QuestionPackageName:
		slug := a.VendorSlug
		if slug == "" {
			slug = ResolveDefault(QuestionVendorSlug, a, d)
		}
		if slug == "" || a.ProjectNamespace == "" {
			return ""
		}
		return naming.DerivePackageName(slug, a.ProjectNamespace)
	}
	return ""
}

// Complete fills every unanswered question without prompting. The vendor
// and project namespaces have no safe default and must already be set.
// All answers are validated.
func Complete(a Answers, d Defaults) (Answers, error) {
	for _, id := range []string{QuestionVendorNamespace, QuestionProjectNamespace} {
		if strings.TrimSpace(a.Get(id)) == "" {
			return a, fmt.Errorf("%w: %s", ErrMissingAnswer, id)
		}
	}

	questions := DefaultQuestions()
	for _, q := range questions {
		value := strings.TrimSpace(a.Get(q.ID))
		if value == "" {
			value = ResolveDefault(q.ID, a, d)
		}
		if err := checkAnswer(&q, value); err != nil {
			return a, fmt.Errorf("%s: %w", q.ID, err)
		}
		a.Set(q.ID, value)
	}
	return a, nil
}

// checkAnswer applies the required and Validate rules of q to value.
func checkAnswer(q *Question, value string) error {
	if value == "" {
		if q.Required {
			return fmt.Errorf("%w: %s", ErrMissingAnswer, q.ID)
		}
		return nil
	}
	if q.Validate != nil {
		return q.Validate(value)
	}
	return nil
}
