// Package profile defines the browser profile entity stored by pwactl.
package profile

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/Siddhesh-Agarwal/pwactl/internal/id"
)

const (
	DefaultName        = "Default"
	DefaultDescription = "Default profile for all web apps"
)

var errNull = errors.New("profile: expected object, got null")

// Profile groups installed sites that share one browser profile.
type Profile struct {
	ULID        id.ID   `json:"ulid"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Sites       []id.ID `json:"sites"`
}

// Default returns the profile every installation starts with.
func Default() Profile {
	return Profile{
		ULID:        id.Nil,
		Name:        ptr(DefaultName),
		Description: ptr(DefaultDescription),
		Sites:       []id.ID{},
	}
}

// New returns an empty profile with a fresh ID. Empty strings leave the
// corresponding field unset.
func New(name, description string) Profile {
	p := Profile{
		ULID:  id.New(),
		Sites: []id.ID{},
	}
	p.SetName(name)
	p.SetDescription(description)
	return p
}

func (p *Profile) SetName(name string) {
	p.Name = optional(name)
}

func (p *Profile) SetDescription(description string) {
	p.Description = optional(description)
}

// DisplayName returns the name, or the ID when the profile is unnamed.
func (p Profile) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.ULID.String()
}

// HasSite reports whether site is attached to p.
func (p Profile) HasSite(site id.ID) bool {
	for _, s := range p.Sites {
		if s == site {
			return true
		}
	}
	return false
}

// AddSite attaches site to p unless it is already attached.
func (p *Profile) AddSite(site id.ID) {
	if !p.HasSite(site) {
		p.Sites = append(p.Sites, site)
	}
}

// RemoveSite detaches site from p.
func (p *Profile) RemoveSite(site id.ID) {
	kept := p.Sites[:0]
	for _, s := range p.Sites {
		if s != site {
			kept = append(kept, s)
		}
	}
	p.Sites = kept
}

// UnmarshalJSON fills fields missing from data with their Default values.
// Unknown fields are ignored.
func (p *Profile) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNull
	}

	type plain Profile
	v := plain(Default())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Profile(v)
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return ptr(s)
}

func ptr(s string) *string {
	return &s
}
