//go:build debug

package core

import "fmt"

// DebugAsserts reports whether invariant assertions are compiled in
const DebugAsserts = true

// Assert panics with msg when cond is false
func Assert(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+msg, args...))
	}
}
