package site

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrCrossOrigin indicates the start URL and document URL differ in origin.
	ErrCrossOrigin = errors.New("start and document URL are not in the same origin")
	// ErrOutOfScope indicates the start URL lies outside the manifest scope.
	ErrOutOfScope = errors.New("start URL is not within the scope")
)

// Manifest is the subset of a web app manifest kept for an installed site.
type Manifest struct {
	StartURL        string   `json:"start_url,omitempty"`
	Scope           string   `json:"scope,omitempty"`
	Name            string   `json:"name,omitempty"`
	ShortName       string   `json:"short_name,omitempty"`
	Description     string   `json:"description,omitempty"`
	ThemeColor      string   `json:"theme_color,omitempty"`
	BackgroundColor string   `json:"background_color,omitempty"`
	Icons           []Icon   `json:"icons"`
	Categories      []string `json:"categories"`
	Keywords        []string `json:"keywords"`
}

// ResolveManifest makes the start URL and scope of m absolute against the
// document the manifest was found on.
//
// A missing start URL becomes the document URL and a missing scope becomes
// the directory of the start URL. The start URL must share the document's
// origin and lie within the scope.
func ResolveManifest(m Manifest, documentURL string) (Manifest, error) {
	doc, err := url.Parse(documentURL)
	if err != nil {
		return m, fmt.Errorf("invalid document URL: %w", err)
	}
	if !doc.IsAbs() {
		return m, fmt.Errorf("document URL %q is not absolute", documentURL)
	}

	start := doc
	if m.StartURL != "" {
		if start, err = doc.Parse(m.StartURL); err != nil {
			return m, fmt.Errorf("invalid start URL: %w", err)
		}
	}

	var scope *url.URL
	if m.Scope != "" {
		scope, err = doc.Parse(m.Scope)
	} else {
		scope, err = start.Parse(".")
	}
	if err != nil {
		return m, fmt.Errorf("invalid scope: %w", err)
	}

	if origin(start) != origin(doc) {
		return m, ErrCrossOrigin
	}
	if origin(start) != origin(scope) || !strings.HasPrefix(pathname(start), pathname(scope)) {
		return m, ErrOutOfScope
	}

	m.StartURL = start.String()
	m.Scope = scope.String()
	return m, nil
}

func origin(u *url.URL) string {
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host)
}

func pathname(u *url.URL) string {
	if u.EscapedPath() == "" {
		return "/"
	}
	return u.EscapedPath()
}
