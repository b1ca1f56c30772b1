// Package check contains the validation levels for emailsyntax.
// Each type implements the checker interface defined in validator.go.
// These types can be used directly, but the recommended approach is
// to use the fluent builder API from the github.com/optimode/emailsyntax package.
package check
