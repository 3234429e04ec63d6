// Package format names the textual forms a mapping representation can be
// written in and read from.
package format
