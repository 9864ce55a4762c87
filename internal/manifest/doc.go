// Package manifest handles parsing and validation of the project-local
// template override manifest (.kfrc/templates.yaml). The manifest maps
// template identifiers to files that replace the builtin templates for that
// project, and is validated against an embedded JSON Schema.
package manifest
