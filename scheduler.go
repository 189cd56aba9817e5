package fsrs

import (
	"math"
	"time"
)

// Outcome pairs the next-card that results from a grade with the
// ReviewLog documenting that transition.
type Outcome struct {
	Card Card
	Log  ReviewLog
}

// Engine is the scheduling engine: given a card and an instant, it
// produces the four candidate next-cards, one per grade. An Engine is
// immutable after construction and safe for concurrent use — every call
// allocates its own working copies and never aliases the input.
type Engine struct {
	model  memoryModel
	params Parameters
}

// NewEngine constructs an Engine from the given Parameters. It returns
// ErrInvalidParameters if the weights, request retention, or maximum
// interval are out of range.
func NewEngine(p Parameters) (*Engine, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Engine{model: newMemoryModel(p.W), params: p}, nil
}

var grades = [4]Grade{Again, Hard, Good, Easy}

// Schedule computes the four candidate outcomes of reviewing card at now,
// one per Grade. now must be UTC; it returns ErrInvalidInstant otherwise.
// card is never mutated.
func (e *Engine) Schedule(card Card, now time.Time) (map[Grade]Outcome, error) {
	if err := validateUTC(now); err != nil {
		return nil, err
	}
	assertCard(card)

	preState := card.State

	// Prepare: stamp the review instant and bump reps.
	c := card.clone()
	if preState == New {
		c.ElapsedDays = 0
	} else {
		c.ElapsedDays = wholeDays(*c.LastReview, now)
	}
	c.LastReview = timePtr(now)
	c.Reps++

	// REVIEW computes retrievability once, shared across all four candidates.
	var r float64
	if preState == Review {
		r = e.model.retrievability(float64(c.ElapsedDays), c.Stability)
	}

	// One candidate card per grade: transition state, then update memory.
	candidates := make(map[Grade]Card, 4)
	for _, g := range grades {
		cand := c.clone()
		e.transition(&cand, preState, g)
		e.updateMemory(&cand, c, preState, g, r)
		candidates[g] = cand
	}

	// Derive intervals and due instants for all four candidates.
	e.deriveIntervals(candidates, preState, now)

	// Emit a review log alongside each candidate card.
	outcomes := make(map[Grade]Outcome, 4)
	for _, g := range grades {
		cand := candidates[g]
		assertCard(cand)
		outcomes[g] = Outcome{
			Card: cand,
			Log: ReviewLog{
				Grade:         g,
				ScheduledDays: cand.ScheduledDays,
				ElapsedDays:   c.ElapsedDays,
				ReviewedAt:    now,
				PriorState:    preState,
			},
		}
	}
	return outcomes, nil
}

// transition applies the state-transition table. Only REVIEW's AGAIN
// outcome increments Lapses.
func (e *Engine) transition(cand *Card, preState State, g Grade) {
	switch preState {
	case New:
		if g == Easy {
			cand.State = Review
		} else {
			cand.State = Learning
		}
	case Learning, Relearning:
		if g == Good || g == Easy {
			cand.State = Review
		} else {
			cand.State = preState
		}
	case Review:
		if g == Again {
			cand.State = Relearning
			cand.Lapses++
		} else {
			cand.State = Review
		}
	}
}

// updateMemory applies the stability/difficulty update for cand, given
// the prepared card (post-prepare, before transition) and the shared
// retrievability r (meaningful only when preState == Review).
func (e *Engine) updateMemory(cand *Card, prepared Card, preState State, g Grade, r float64) {
	switch preState {
	case New:
		cand.Stability = e.model.initStability(g)
		cand.Difficulty = e.model.initDifficulty(g)
	case Learning, Relearning:
		// Carried unchanged from the first review that created them; the
		// engine does not recompute (d, s) here.
	case Review:
		cand.Difficulty = e.model.nextDifficulty(prepared.Difficulty, g)
		cand.Stability = e.model.nextStability(prepared.Difficulty, prepared.Stability, r, g)
		rr := r
		cand.Retrievability = &rr
	}
}

// deriveIntervals performs per-preState interval derivation plus the
// shared finalize rule, mutating candidates in place.
func (e *Engine) deriveIntervals(candidates map[Grade]Card, preState State, now time.Time) {
	switch preState {
	case New:
		setDue(candidates, Again, addMinutes(now, 1), 0)
		setDue(candidates, Hard, addMinutes(now, 5), 0)
		setDue(candidates, Good, addMinutes(now, 10), 0)
		easyIvl := e.model.nextInterval(candidates[Easy].Stability, e.params.RequestRetention, e.params.MaximumInterval)
		setDue(candidates, Easy, addDays(now, easyIvl), easyIvl)

	case Learning, Relearning:
		goodIvl := e.model.nextInterval(candidates[Good].Stability, e.params.RequestRetention, e.params.MaximumInterval)
		easyIvl := e.model.nextInterval(candidates[Easy].Stability, e.params.RequestRetention, e.params.MaximumInterval)
		easyIvl = min(max(easyIvl, goodIvl+1), e.params.MaximumInterval)
		e.finalize(candidates, now, 0, goodIvl, easyIvl)

	case Review:
		hardIvl0 := e.model.nextInterval(candidates[Hard].Stability, e.params.RequestRetention, e.params.MaximumInterval)
		goodIvl0 := e.model.nextInterval(candidates[Good].Stability, e.params.RequestRetention, e.params.MaximumInterval)
		hardIvl := min(hardIvl0, goodIvl0)
		// The ordering bumps are capped at MaximumInterval, so at the cap
		// neighbouring grades can share the same interval.
		goodIvl := min(max(goodIvl0, hardIvl+1), e.params.MaximumInterval)
		easyIvl := e.model.nextInterval(candidates[Easy].Stability, e.params.RequestRetention, e.params.MaximumInterval)
		easyIvl = min(max(easyIvl, goodIvl+1), e.params.MaximumInterval)
		e.finalize(candidates, now, hardIvl, goodIvl, easyIvl)
	}
}

// finalize applies the common due-instant rule shared by
// Learning/Relearning/Review.
func (e *Engine) finalize(candidates map[Grade]Card, now time.Time, hardIvl, goodIvl, easyIvl int) {
	setDue(candidates, Again, addMinutes(now, 5), 0)
	if hardIvl > 0 {
		setDue(candidates, Hard, addDays(now, hardIvl), hardIvl)
	} else {
		setDue(candidates, Hard, addMinutes(now, 10), hardIvl)
	}
	setDue(candidates, Good, addDays(now, goodIvl), goodIvl)
	setDue(candidates, Easy, addDays(now, easyIvl), easyIvl)
}

// setDue mutates the Due and ScheduledDays fields of candidates[g].
func setDue(candidates map[Grade]Card, g Grade, due time.Time, scheduledDays int) {
	cand := candidates[g]
	cand.Due = due
	cand.ScheduledDays = scheduledDays
	candidates[g] = cand
}

// RetrievabilityOf is a read-only projection: the probability of recall
// for card at now. It returns 0 for a New card or one with no stability,
// and otherwise uses the exponential 2^(-delta/S) measured from
// card.Due — deliberately distinct from the forgetting curve used
// internally by Schedule. The two give different values even for the
// same day count (one stability's worth of days gives 0.5 here and 0.9
// on the forgetting curve); this is intentional, not a bug to fix.
// Before card.Due, delta is negative and the result is greater than 1.
func (e *Engine) RetrievabilityOf(card Card, now time.Time) (float64, error) {
	if err := validateUTC(now); err != nil {
		return 0, err
	}
	if card.State == New || card.Stability <= 0 {
		return 0, nil
	}
	var delta int
	if !now.Before(card.Due) {
		delta = wholeDays(card.Due, now)
	} else {
		delta = -wholeDays(now, card.Due)
	}
	return math.Pow(2, -float64(delta)/card.Stability), nil
}

func timePtr(t time.Time) *time.Time { return &t }
