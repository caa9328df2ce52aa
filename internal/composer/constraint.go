package composer

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ValidateConstraint reports whether constraint is a version constraint
// such as ">=5.5", "^8.1" or "~7.4 || ^8.0". An empty constraint is valid
// and means "no requirement".
func ValidateConstraint(constraint string) error {
	c := strings.TrimSpace(constraint)
	if c == "" {
		return nil
	}
	if _, err := semver.NewConstraint(c); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidConstraint, constraint, err)
	}
	return nil
}

// ConstraintAllows reports whether version satisfies constraint. It is used
// to warn when the local PHP binary cannot run the generated library.
func ConstraintAllows(constraint, version string) (bool, error) {
	c, err := semver.NewConstraint(strings.TrimSpace(constraint))
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrInvalidConstraint, constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return false, fmt.Errorf("parse version %q: %w", version, err)
	}
	return c.Check(v), nil
}
