//go:build !fsrsdebug

package fsrs

// assertCard is a no-op in release builds. See debug_on.go.
func assertCard(card Card) {}
