package templates

import (
	"embed"
	"path"
)

//go:embed builtin/*.template
var builtinFS embed.FS

// Provider fetches template text by ID for a project root. A missing
// template is reported with ok == false, never with an error.
type Provider interface {
	Template(id ID, root string) (text string, ok bool)
}

// Builtin serves the templates embedded in the binary. The root is ignored.
var Builtin Provider = builtinProvider{}

type builtinProvider struct{}

func (builtinProvider) Template(id ID, _ string) (string, bool) {
	if !id.Valid() {
		return "", false
	}
	data, err := builtinFS.ReadFile(path.Join("builtin", id.File()))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Map is an in-memory Provider.
type Map map[ID]string

// Template implements Provider.
func (m Map) Template(id ID, _ string) (string, bool) {
	text, ok := m[id]
	return text, ok
}

// Chain asks each provider in turn and returns the first hit.
type Chain []Provider

// Template implements Provider.
func (c Chain) Template(id ID, root string) (string, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if text, ok := p.Template(id, root); ok {
			return text, true
		}
	}
	return "", false
}
