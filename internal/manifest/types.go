package manifest

import (
	"bytes"
	"encoding/json"
)

// Manifest is the top-level configuration record for a documentation site:
// branding, external links, and the navigation tree. It is immutable once
// loaded; a rebuild reloads it from source.
type Manifest struct {
	Schema          string                       `json:"$schema,omitempty"`
	Name            string                       `json:"name"`
	Favicon         string                       `json:"favicon,omitempty"`
	Colors          Colors                       `json:"colors"`
	Logo            Logo                         `json:"logo"`
	TopbarCtaButton *CtaButton                   `json:"topbarCtaButton,omitempty"`
	Anchors         []Anchor                     `json:"anchors,omitempty"`
	Navigation      []Group                      `json:"navigation"`
	FooterSocials   map[string]string            `json:"footerSocials,omitempty"`
	Analytics       map[string]map[string]string `json:"analytics,omitempty"`
}

// Colors contains the site color scheme. Primary is required.
type Colors struct {
	Primary    string            `json:"primary"`
	Light      string            `json:"light,omitempty"`
	Dark       string            `json:"dark,omitempty"`
	Background *BackgroundColors `json:"background,omitempty"`
}

// BackgroundColors contains per-theme background colors
type BackgroundColors struct {
	Dark  string `json:"dark,omitempty"`
	Light string `json:"light,omitempty"`
}

// Logo contains per-theme logo paths and an optional click-through URL
type Logo struct {
	Dark  string `json:"dark"`
	Light string `json:"light"`
	Href  string `json:"href,omitempty"`
}

// CtaButton is the top-bar call-to-action button
type CtaButton struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Anchor is a top-level external link shown outside the navigation tree
type Anchor struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	URL  string `json:"url"`
}

// Group is a named section of the navigation tree. Pages ordering is
// significant: it defines sidebar order and is preserved on load and
// re-serialization.
type Group struct {
	Group string `json:"group"`
	Pages []Page `json:"pages"`
}

// Page is one entry in a group's pages list: either a leaf path
// identifying a document, or a nested group. Exactly one of Path and
// Group is set.
type Page struct {
	Path  string
	Group *Group
}

// IsLeaf reports whether the page is a leaf path
func (p Page) IsLeaf() bool {
	return p.Group == nil
}

// LeafPage creates a leaf page entry
func LeafPage(path string) Page {
	return Page{Path: path}
}

// GroupPage creates a nested-group page entry
func GroupPage(g Group) Page {
	return Page{Group: &g}
}

// UnmarshalJSON decodes a page entry from either a JSON string or a
// group object
func (p *Page) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(data, &p.Path)
	}

	var g Group
	if err := json.Unmarshal(data, &g); err != nil {
		return err
	}
	p.Group = &g
	return nil
}

// MarshalJSON encodes the page entry in the same shape it was read from
func (p Page) MarshalJSON() ([]byte, error) {
	if p.Group != nil {
		return json.Marshal(p.Group)
	}
	return json.Marshal(p.Path)
}

// Marshal serializes the manifest back to JSON. Navigation ordering is
// preserved exactly; map-valued fields (footerSocials, analytics) encode
// with sorted keys.
func (m *Manifest) Marshal() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
