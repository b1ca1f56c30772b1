// Package syntax implements the pure address syntax rules: local part,
// domain, and the full address built from the two. Nothing here performs
// I/O or keeps state, so every function is safe for concurrent use.
//
// All failures are *Error values whose message names the broken rule.
package syntax
