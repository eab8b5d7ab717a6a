package core

import "errors"

// ErrInvariant wraps every structural invariant violation reported by CheckInvariants methods
var ErrInvariant = errors.New("invariant violated")
