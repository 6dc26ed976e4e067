// Package site defines the installed web app entity stored by pwactl.
package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/Siddhesh-Agarwal/pwactl/internal/id"
)

var errNull = errors.New("site: expected object, got null")

// Config holds the user-controlled settings of a site. Empty values fall
// back to the manifest.
type Config struct {
	Name               string   `json:"name,omitempty"`
	Description        string   `json:"description,omitempty"`
	StartURL           string   `json:"start_url,omitempty"`
	DocumentURL        string   `json:"document_url"`
	ManifestURL        string   `json:"manifest_url"`
	Categories         []string `json:"categories"`
	Keywords           []string `json:"keywords"`
	EnabledURLHandlers []string `json:"enabled_url_handlers"`
	LaunchOnLogin      bool     `json:"launch_on_login"`
}

// Site is a web app installed into a profile.
type Site struct {
	ULID     id.ID    `json:"ulid"`
	Profile  id.ID    `json:"profile"`
	Config   Config   `json:"config"`
	Manifest Manifest `json:"manifest"`
}

// Default returns an unattached site with no configuration.
func Default() Site {
	return Site{
		ULID:    id.Nil,
		Profile: id.Nil,
		Config: Config{
			Categories:         []string{},
			Keywords:           []string{},
			EnabledURLHandlers: []string{},
		},
		Manifest: Manifest{
			Icons:      []Icon{},
			Categories: []string{},
			Keywords:   []string{},
		},
	}
}

// New returns a site with a fresh ID attached to profile.
func New(profile id.ID, cfg Config, manifest Manifest) Site {
	s := Default()
	s.ULID = id.New()
	s.Profile = profile
	if cfg.Categories == nil {
		cfg.Categories = s.Config.Categories
	}
	if cfg.Keywords == nil {
		cfg.Keywords = s.Config.Keywords
	}
	if cfg.EnabledURLHandlers == nil {
		cfg.EnabledURLHandlers = s.Config.EnabledURLHandlers
	}
	s.Config = cfg
	if manifest.Icons == nil {
		manifest.Icons = s.Manifest.Icons
	}
	if manifest.Categories == nil {
		manifest.Categories = s.Manifest.Categories
	}
	if manifest.Keywords == nil {
		manifest.Keywords = s.Manifest.Keywords
	}
	s.Manifest = manifest
	return s
}

// Name returns the configured name, falling back to the manifest names and
// finally the start URL host.
func (s Site) Name() string {
	switch {
	case s.Config.Name != "":
		return s.Config.Name
	case s.Manifest.Name != "":
		return s.Manifest.Name
	case s.Manifest.ShortName != "":
		return s.Manifest.ShortName
	}
	if u, err := url.Parse(s.StartURL()); err == nil && u.Host != "" {
		return u.Host
	}
	return s.ULID.String()
}

// StartURL returns the URL the app opens at.
func (s Site) StartURL() string {
	if s.Config.StartURL != "" {
		return s.Config.StartURL
	}
	return s.Manifest.StartURL
}

// UnmarshalJSON fills fields missing from data with their Default values.
// Unknown fields are ignored.
func (s *Site) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errNull
	}

	type plain Site
	v := plain(Default())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Site(v)
	return nil
}
