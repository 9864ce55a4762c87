// Package materializer creates directories and writes generated files.
//
// All access goes through an afero.Fs so the same code writes to disk in the
// CLI and to memory in tests.
package materializer
