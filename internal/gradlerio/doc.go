// Package gradlerio resolves the GradleRIO plugin version written into
// generated build files.
package gradlerio
