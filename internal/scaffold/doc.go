// Package scaffold generates robot project skeletons. It powers the
// "kfrc create" command: each supported flavor is a Recipe, an ordered list
// of directory and templated-file steps, run by a single executor.
package scaffold
