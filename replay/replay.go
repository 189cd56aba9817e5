// Package replay rebuilds a card's scheduling state by folding an
// engine's Schedule over a chronological sequence of review logs. It is
// a convenience built entirely on the public fsrs surface — it contains
// no scheduling rules of its own.
package replay

import (
	"fmt"
	"sort"

	"github.com/paperdeck/fsrs"
	"github.com/pkg/errors"
)

// ErrOutOfOrder is returned by Replay when logs are not in
// non-decreasing ReviewedAt order.
var ErrOutOfOrder = fmt.Errorf("replay: logs are not in chronological order")

// Replay starts from card and applies each log in order, selecting the
// candidate outcome for that log's Grade at each step. It returns the
// resulting card, or an error from the underlying Schedule call or from
// out-of-order logs.
func Replay(engine *fsrs.Engine, card fsrs.Card, logs []fsrs.ReviewLog) (fsrs.Card, error) {
	if !sort.SliceIsSorted(logs, func(i, j int) bool {
		return logs[i].ReviewedAt.Before(logs[j].ReviewedAt)
	}) {
		return fsrs.Card{}, ErrOutOfOrder
	}

	for i, log := range logs {
		outcomes, err := engine.Schedule(card, log.ReviewedAt)
		if err != nil {
			return fsrs.Card{}, errors.Wrapf(err, "replay: log %d", i)
		}
		outcome, ok := outcomes[log.Grade]
		if !ok {
			return fsrs.Card{}, errors.Wrapf(fsrs.ErrInvalidGrade, "replay: log %d", i)
		}
		card = outcome.Card
	}
	return card, nil
}
