package config

import (
	"github.com/libforge/phpgen/internal/core/naming"
	"github.com/libforge/phpgen/internal/defs"
)

// LoadVendorMapping decodes the vendor mapping from the store. An absent
// key yields an empty mapping.
func LoadVendorMapping(s *Store) (naming.VendorMapping, error) {
	var raw map[string]string
	if _, err := s.GetInto(defs.VendorMappingKey, &raw); err != nil {
		return naming.VendorMapping{}, err
	}
	return naming.NewVendorMapping(raw), nil
}

// StoreVendorMapping places m in the store. The caller decides when to Save.
func StoreVendorMapping(s *Store, m naming.VendorMapping) error {
	return s.Set(defs.VendorMappingKey, m.Map())
}

// RememberVendorSlug records vendor -> slug and saves the store, but only
// when the stored mapping actually changes. It reports whether a write
// happened.
func RememberVendorSlug(s *Store, vendor, slug string) (bool, error) {
	current, err := LoadVendorMapping(s)
	if err != nil {
		return false, err
	}

	updated, changed := naming.RecordVendorSlug(current, vendor, slug)
	if !changed {
		return false, nil
	}

	if err := StoreVendorMapping(s, updated); err != nil {
		return false, err
	}
	if err := s.Save(); err != nil {
		return false, err
	}
	return true, nil
}

// ForgetVendorSlug removes the remembered slug for vendor and saves the
// store when an entry was removed.
func ForgetVendorSlug(s *Store, vendor string) (bool, error) {
	current, err := LoadVendorMapping(s)
	if err != nil {
		return false, err
	}

	updated, changed := naming.ForgetVendorSlug(current, vendor)
	if !changed {
		return false, nil
	}

	if err := StoreVendorMapping(s, updated); err != nil {
		return false, err
	}
	if err := s.Save(); err != nil {
		return false, err
	}
	return true, nil
}
