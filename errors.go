package goplatsel

import "github.com/albertocavalcante/go-platsel/dispatch"

// Re-exported sentinel errors for facade users, so callers matching with
// errors.Is need not import the dispatch package.
var (
	// ErrDuplicateDefault indicates a second default handler registration.
	ErrDuplicateDefault = dispatch.ErrDuplicateDefault

	// ErrSealed indicates registration on a sealed registry.
	ErrSealed = dispatch.ErrSealed

	// ErrNilHandler indicates a nil handler registration.
	ErrNilHandler = dispatch.ErrNilHandler
)
