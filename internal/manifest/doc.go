// Package manifest provides types and utilities for loading and validating
// documentation-site navigation manifests (mint.json). A manifest defines
// the site's branding, external anchor links, and the hierarchical
// navigation tree a renderer turns into a sidebar.
//
// # Manifest Format
//
// Manifests are UTF-8 JSON documents:
//
//	{
//	  "name": "My Docs",
//	  "colors": {"primary": "#6C60F0"},
//	  "logo": {"dark": "/logo/dark.svg", "light": "/logo/light.svg"},
//	  "navigation": [
//	    {"group": "Get Started", "pages": [
//	      "quickstart",
//	      {"group": "Platform", "pages": ["platform/overview"]}
//	    ]}
//	  ]
//	}
//
// Entries in a group's pages list are either leaf path strings or nested
// groups, recursively.
//
// # Usage
//
// Load a manifest file:
//
//	loader := manifest.NewLoader()
//	m, err := loader.Load("mint.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Loading is all-or-nothing: an error never yields a partially populated
// Manifest.
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrMalformedInput: input is not valid JSON
//   - ErrSchemaViolation: a field is missing or has the wrong shape
//   - ErrFileNotFound: manifest file does not exist
//   - ErrUnsupportedExt: unsupported file extension
//
// Schema violations carry the offending field path via *SchemaError.
package manifest
