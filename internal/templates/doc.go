// Package templates is the template store for generated robot projects.
//
// Every template is named by an ID from a closed set. Text is looked up
// through a Provider: the builtin set embedded in the binary, an in-memory
// Map, or an Overlay that lets a project replace individual templates via
// .kfrc/templates.yaml. Template text carries three placeholder tokens that
// Substitute replaces with the class name, package and GradleRIO version.
package templates
