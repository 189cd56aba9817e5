//go:build fsrsdebug

package fsrs

// assertCard panics if card violates an invariant. Only compiled in
// when the fsrsdebug build tag is set; release builds use the no-op in
// debug_off.go instead.
func assertCard(card Card) {
	if err := card.validate(); err != nil {
		panic(err)
	}
}
