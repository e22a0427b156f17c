//go:build !manroffdebug

package tree

// CheckInvariants is a no-op outside of -tags manroffdebug builds, so
// callers can invoke it unconditionally after each builder operation
// without a build-tag switch of their own.
func CheckInvariants(root *Root) error { return nil }
