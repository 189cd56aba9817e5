// Package fsrs implements the core scheduling mathematics and state
// machine of the Free Spaced Repetition Scheduler (FSRS).
//
// Given a card's current memory state and a review instant,
// [Engine.Schedule] computes the four candidate next-states that result
// from each of the four grades (Again, Hard, Good, Easy). The engine is
// pure and synchronous: it never reads a clock, never allocates
// identifiers, and never mutates its input — every call returns fresh
// values.
//
// Basic usage:
//
//	eng, err := fsrs.NewEngine(fsrs.DefaultParameters())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	card := fsrs.NewCard()
//	outcomes, err := eng.Schedule(card, time.Now().UTC())
//	next := outcomes[fsrs.Good].Card
package fsrs
