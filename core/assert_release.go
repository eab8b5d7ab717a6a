//go:build !debug

package core

// DebugAsserts reports whether invariant assertions are compiled in
const DebugAsserts = false

// Assert is a no-op without the debug build tag
func Assert(cond bool, msg string, args ...any) {}
