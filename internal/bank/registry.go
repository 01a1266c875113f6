// Package bank holds the closed catalog of known bank pattern families and
// the substring-based detection used to pick a profile for a document.
package bank

import "strings"

// Registry is the read-only catalog of bank profiles. It is built once at
// process start and safe for concurrent use.
type Registry struct {
	profiles []Profile
}

// NewRegistry returns a registry over the fixed catalog.
func NewRegistry() *Registry {
	return &Registry{profiles: catalog}
}

// Detect returns the first profile whose display name or code appears as a
// case-insensitive substring anywhere in the document text. Detection is
// deliberately crude; the catalog order is the documented tie-break when a
// statement mentions several institutions. No match returns (Unknown, nil),
// which does not block the rest of the pipeline.
func (r *Registry) Detect(text string) (Code, *Profile) {
	lower := strings.ToLower(text)
	for i := range r.profiles {
		p := &r.profiles[i]
		if strings.Contains(lower, strings.ToLower(p.Name)) ||
			strings.Contains(lower, string(p.Code)) {
			return p.Code, p
		}
	}
	return Unknown, nil
}

// Lookup returns the profile for a code, or nil if the code is not in the
// catalog (including Unknown).
func (r *Registry) Lookup(code Code) *Profile {
	for i := range r.profiles {
		if r.profiles[i].Code == code {
			return &r.profiles[i]
		}
	}
	return nil
}

// Profiles returns the catalog in detection-priority order.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}
