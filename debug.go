package fsrs

import "fmt"

// errInvariant builds the error returned by Card.validate. It is always
// available; whether it ever reaches a caller depends on the fsrsdebug
// build tag (see debug_on.go / debug_off.go).
func errInvariant(msg string) error {
	return fmt.Errorf("fsrs: invariant violated: %s", msg)
}
