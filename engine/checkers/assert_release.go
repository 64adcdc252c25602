//go:build !checkersdebug

package checkers

const debugAssertions = false
