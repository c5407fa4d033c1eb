// Package format names the surface syntaxes a datafile can be read from
// or written to.
package format
