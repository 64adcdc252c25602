//go:build checkersdebug

package checkers

// debugAssertions turns engine contract violations into panics.
const debugAssertions = true
