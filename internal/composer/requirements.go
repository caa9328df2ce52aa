package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Requirement is one "package": "constraint" entry of require or require-dev.
type Requirement struct {
	Package    string
	Constraint string
}

// Requirements is an ordered package list. It encodes as a JSON object
// whose keys keep insertion order, as Composer writes them.
type Requirements []Requirement

// Get returns the constraint for pkg.
func (r Requirements) Get(pkg string) (string, bool) {
	i := slices.IndexFunc(r, func(req Requirement) bool { return req.Package == pkg })
	if i < 0 {
		return "", false
	}
	return r[i].Constraint, true
}

// Set replaces the constraint of pkg in place or appends a new entry.
func (r Requirements) Set(pkg, constraint string) Requirements {
	i := slices.IndexFunc(r, func(req Requirement) bool { return req.Package == pkg })
	if i >= 0 {
		r[i].Constraint = constraint
		return r
	}
	return append(r, Requirement{Package: pkg, Constraint: constraint})
}

// MarshalJSON writes the entries as an object in slice order. A nil or
// empty list is written as {}.
func (r Requirements) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	// Constraints such as ">=8.1" must stay readable, so HTML escaping is off.
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, req := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(req.Package); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(req.Constraint); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object, keeping the key order of the document.
func (r *Requirements) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("composer: requirements must be an object, got %v", tok)
	}

	out := Requirements{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var constraint string
		if err := dec.Decode(&constraint); err != nil {
			return fmt.Errorf("composer: requirement %q: %w", key, err)
		}
		out = out.Set(key, constraint)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*r = out
	return nil
}
