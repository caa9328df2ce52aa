package naming

import (
	"maps"
	"slices"
)

// VendorMapping maps a PHP vendor namespace (as typed, e.g. "Acme") to the
// Composer vendor slug the user confirmed for it (e.g. "acme-corp").
//
// The zero value is an empty mapping. Values are never mutated after
// construction; operations that change the mapping return a new value.
type VendorMapping struct {
	slugs map[string]string
}

// NewVendorMapping copies m into a new VendorMapping.
func NewVendorMapping(m map[string]string) VendorMapping {
	if len(m) == 0 {
		return VendorMapping{}
	}
	return VendorMapping{slugs: maps.Clone(m)}
}

// Len returns the number of vendors in the mapping.
func (m VendorMapping) Len() int {
	return len(m.slugs)
}

// Map returns a copy of the underlying map. It is never nil.
func (m VendorMapping) Map() map[string]string {
	out := make(map[string]string, len(m.slugs))
	maps.Copy(out, m.slugs)
	return out
}

// Vendors returns the vendor namespaces in sorted order.
func (m VendorMapping) Vendors() []string {
	return slices.Sorted(maps.Keys(m.slugs))
}

// Equal reports whether both mappings hold the same entries.
func (m VendorMapping) Equal(other VendorMapping) bool {
	return maps.Equal(m.slugs, other.slugs)
}

// LookupVendorSlug returns the slug previously recorded for vendor.
// An entry holding an empty slug counts as absent.
func LookupVendorSlug(m VendorMapping, vendor string) (string, bool) {
	slug, ok := m.slugs[vendor]
	if !ok || slug == "" {
		return "", false
	}
	return slug, true
}

// DefaultVendorSlug returns the recorded slug for vendor, falling back to
// the lower-cased vendor namespace.
func DefaultVendorSlug(m VendorMapping, vendor string) string {
	if slug, ok := LookupVendorSlug(m, vendor); ok {
		return slug
	}
	return lower(vendor)
}

// RecordVendorSlug returns a mapping in which vendor maps to slug. When the
// mapping already holds exactly that entry, m is returned as-is and changed
// is false: callers must not persist anything in that case.
func RecordVendorSlug(m VendorMapping, vendor, slug string) (updated VendorMapping, changed bool) {
	if current, ok := m.slugs[vendor]; ok && current == slug {
		return m, false
	}

	next := make(map[string]string, len(m.slugs)+1)
	maps.Copy(next, m.slugs)
	next[vendor] = slug
	return VendorMapping{slugs: next}, true
}

// ForgetVendorSlug returns a mapping without vendor. changed is false when
// vendor was not present.
func ForgetVendorSlug(m VendorMapping, vendor string) (updated VendorMapping, changed bool) {
	if _, ok := m.slugs[vendor]; !ok {
		return m, false
	}

	next := maps.Clone(m.slugs)
	delete(next, vendor)
	return VendorMapping{slugs: next}, true
}
