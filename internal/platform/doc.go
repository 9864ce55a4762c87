// Package platform smooths over operating system differences in filesystem
// permission handling.
package platform
