package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Loader loads and validates manifest files
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a manifest file from the given path
func (l *Loader) Load(path string) (*Manifest, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// ReadFile reads raw manifest bytes from disk, checking existence and
// extension before parsing so callers can hash the exact input
func ReadFile(path string) ([]byte, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".json" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	return data, nil
}

// Load parses and validates a manifest from raw JSON bytes. Validation is
// all-or-nothing: on error no Manifest is returned, never a partial one.
func Load(data []byte) (*Manifest, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrMalformedInput)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedInput)
	}

	root, ok := raw.(map[string]any)
	if !ok {
		return nil, NewSchemaError("$", "object", shapeOf(raw))
	}

	return buildManifest(root)
}

func buildManifest(root map[string]any) (*Manifest, error) {
	var m Manifest
	var err error

	if m.Schema, err = optionalString(root, "", "$schema"); err != nil {
		return nil, err
	}
	if m.Name, err = requireString(root, "", "name"); err != nil {
		return nil, err
	}
	if m.Favicon, err = optionalString(root, "", "favicon"); err != nil {
		return nil, err
	}

	colorsObj, err := requireObject(root, "", "colors")
	if err != nil {
		return nil, err
	}
	if m.Colors, err = buildColors(colorsObj, "colors"); err != nil {
		return nil, err
	}

	logoObj, err := requireObject(root, "", "logo")
	if err != nil {
		return nil, err
	}
	if m.Logo, err = buildLogo(logoObj, "logo"); err != nil {
		return nil, err
	}

	if m.TopbarCtaButton, err = buildCtaButton(root); err != nil {
		return nil, err
	}
	if m.Anchors, err = buildAnchors(root); err != nil {
		return nil, err
	}
	if m.Navigation, err = buildNavigation(root); err != nil {
		return nil, err
	}
	if m.FooterSocials, err = optionalStringMap(root, "", "footerSocials"); err != nil {
		return nil, err
	}
	if m.Analytics, err = buildAnalytics(root); err != nil {
		return nil, err
	}

	return &m, nil
}

func buildColors(obj map[string]any, path string) (Colors, error) {
	var c Colors
	var err error

	if c.Primary, err = requireString(obj, path, "primary"); err != nil {
		return c, err
	}
	if c.Light, err = optionalString(obj, path, "light"); err != nil {
		return c, err
	}
	if c.Dark, err = optionalString(obj, path, "dark"); err != nil {
		return c, err
	}

	bgObj, ok, err := optionalObject(obj, path, "background")
	if err != nil {
		return c, err
	}
	if ok {
		var bg BackgroundColors
		bgPath := childPath(path, "background")
		if bg.Dark, err = optionalString(bgObj, bgPath, "dark"); err != nil {
			return c, err
		}
		if bg.Light, err = optionalString(bgObj, bgPath, "light"); err != nil {
			return c, err
		}
		c.Background = &bg
	}

	return c, nil
}

func buildLogo(obj map[string]any, path string) (Logo, error) {
	var l Logo
	var err error

	if l.Dark, err = requireString(obj, path, "dark"); err != nil {
		return l, err
	}
	if l.Light, err = requireString(obj, path, "light"); err != nil {
		return l, err
	}
	if l.Href, err = optionalString(obj, path, "href"); err != nil {
		return l, err
	}

	return l, nil
}

func buildCtaButton(root map[string]any) (*CtaButton, error) {
	obj, ok, err := optionalObject(root, "", "topbarCtaButton")
	if err != nil || !ok {
		return nil, err
	}

	var cta CtaButton
	if cta.Name, err = requireString(obj, "topbarCtaButton", "name"); err != nil {
		return nil, err
	}
	if cta.URL, err = requireString(obj, "topbarCtaButton", "url"); err != nil {
		return nil, err
	}

	return &cta, nil
}

func buildAnchors(root map[string]any) ([]Anchor, error) {
	v, ok := root["anchors"]
	if !ok {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, NewSchemaError("anchors", "array", shapeOf(v))
	}

	anchors := make([]Anchor, 0, len(arr))
	for i, el := range arr {
		path := indexPath("anchors", i)
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, NewSchemaError(path, "object", shapeOf(el))
		}

		var a Anchor
		var err error
		if a.Name, err = requireString(obj, path, "name"); err != nil {
			return nil, err
		}
		if a.Icon, err = requireString(obj, path, "icon"); err != nil {
			return nil, err
		}
		if a.URL, err = requireString(obj, path, "url"); err != nil {
			return nil, err
		}
		anchors = append(anchors, a)
	}

	if len(anchors) == 0 {
		return nil, nil
	}
	return anchors, nil
}

func buildNavigation(root map[string]any) ([]Group, error) {
	v, ok := root["navigation"]
	if !ok {
		return nil, NewSchemaError("navigation", "array", "missing field")
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, NewSchemaError("navigation", "array", shapeOf(v))
	}
	if len(arr) == 0 {
		return nil, NewSchemaError("navigation", "non-empty array", "empty array")
	}

	groups := make([]Group, 0, len(arr))
	for i, el := range arr {
		path := indexPath("navigation", i)
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, NewSchemaError(path, "group object", shapeOf(el))
		}
		g, err := buildGroup(obj, path)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, nil
}

func buildGroup(obj map[string]any, path string) (Group, error) {
	var g Group
	var err error

	if g.Group, err = requireString(obj, path, "group"); err != nil {
		return g, err
	}

	pagesPath := childPath(path, "pages")
	v, ok := obj["pages"]
	if !ok {
		return g, NewSchemaError(pagesPath, "array", "missing field")
	}
	arr, ok := v.([]any)
	if !ok {
		return g, NewSchemaError(pagesPath, "array", shapeOf(v))
	}

	g.Pages = make([]Page, 0, len(arr))
	for i, el := range arr {
		elPath := indexPath(pagesPath, i)
		switch entry := el.(type) {
		case string:
			g.Pages = append(g.Pages, LeafPage(entry))
		case map[string]any:
			sub, err := buildGroup(entry, elPath)
			if err != nil {
				return g, err
			}
			g.Pages = append(g.Pages, GroupPage(sub))
		default:
			return g, NewSchemaError(elPath, "string or group object", shapeOf(el))
		}
	}

	return g, nil
}

func buildAnalytics(root map[string]any) (map[string]map[string]string, error) {
	obj, ok, err := optionalObject(root, "", "analytics")
	if err != nil || !ok {
		return nil, err
	}

	analytics := make(map[string]map[string]string, len(obj))
	for provider, v := range obj {
		path := childPath("analytics", provider)
		credsObj, ok := v.(map[string]any)
		if !ok {
			return nil, NewSchemaError(path, "object", shapeOf(v))
		}
		creds := make(map[string]string, len(credsObj))
		for key, cv := range credsObj {
			s, ok := cv.(string)
			if !ok {
				return nil, NewSchemaError(childPath(path, key), "string", shapeOf(cv))
			}
			creds[key] = s
		}
		analytics[provider] = creds
	}

	if len(analytics) == 0 {
		return nil, nil
	}
	return analytics, nil
}

// shapeOf names the JSON shape of a decoded value for error messages
func shapeOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func childPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

func indexPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}

func requireString(obj map[string]any, base, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", NewSchemaError(childPath(base, key), "string", "missing field")
	}
	s, ok := v.(string)
	if !ok {
		return "", NewSchemaError(childPath(base, key), "string", shapeOf(v))
	}
	return s, nil
}

func optionalString(obj map[string]any, base, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", NewSchemaError(childPath(base, key), "string", shapeOf(v))
	}
	return s, nil
}

func requireObject(obj map[string]any, base, key string) (map[string]any, error) {
	v, ok := obj[key]
	if !ok {
		return nil, NewSchemaError(childPath(base, key), "object", "missing field")
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, NewSchemaError(childPath(base, key), "object", shapeOf(v))
	}
	return m, nil
}

func optionalObject(obj map[string]any, base, key string) (map[string]any, bool, error) {
	v, ok := obj[key]
	if !ok {
		return nil, false, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false, NewSchemaError(childPath(base, key), "object", shapeOf(v))
	}
	return m, true, nil
}

func optionalStringMap(obj map[string]any, base, key string) (map[string]string, error) {
	raw, ok, err := optionalObject(obj, base, key)
	if err != nil || !ok {
		return nil, err
	}

	m := make(map[string]string, len(raw))
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, NewSchemaError(childPath(childPath(base, key), k), "string", shapeOf(v))
		}
		m[k] = s
	}

	if len(m) == 0 {
		return nil, nil
	}
	return m, nil
}
