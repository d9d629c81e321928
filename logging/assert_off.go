//go:build noassert

package logging

const assertionsEnabled = false
