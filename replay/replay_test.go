package replay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperdeck/fsrs"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 10, 0, 0, 0, time.UTC)
}

func mustEngine(t *testing.T) *fsrs.Engine {
	t.Helper()
	e, err := fsrs.NewEngine(fsrs.DefaultParameters())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// buildLogs drives an engine forward to produce a chronologically
// consistent log sequence, mirroring how a host would accumulate logs.
func buildLogs(t *testing.T, e *fsrs.Engine, grades []fsrs.Grade, start time.Time) []fsrs.ReviewLog {
	t.Helper()
	card := fsrs.Card{State: fsrs.New, Due: start}
	logs := make([]fsrs.ReviewLog, 0, len(grades))
	for _, g := range grades {
		now := card.Due
		outcomes, err := e.Schedule(card, now)
		if err != nil {
			t.Fatalf("Schedule: %v", err)
		}
		outcome := outcomes[g]
		card = outcome.Card
		logs = append(logs, outcome.Log)
	}
	return logs
}

func TestReplayReproducesFinalCard(t *testing.T) {
	e := mustEngine(t)
	grades := []fsrs.Grade{fsrs.Good, fsrs.Good, fsrs.Hard, fsrs.Good, fsrs.Easy}
	start := date(2024, 1, 1)

	card := fsrs.Card{State: fsrs.New, Due: start}
	var want fsrs.Card
	for _, g := range grades {
		now := card.Due
		outcomes, err := e.Schedule(card, now)
		if err != nil {
			t.Fatalf("Schedule: %v", err)
		}
		card = outcomes[g].Card
		want = card
	}

	logs := buildLogs(t, e, grades, start)
	got, err := Replay(e, fsrs.Card{State: fsrs.New, Due: start}, logs)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReplayEmptyLogs(t *testing.T) {
	e := mustEngine(t)
	card := fsrs.Card{State: fsrs.New, Due: date(2024, 1, 1)}
	got, err := Replay(e, card, nil)
	require.NoError(t, err)
	assert.Equal(t, card, got, "Replay with no logs should return the input card unchanged")
}

func TestReplayOutOfOrder(t *testing.T) {
	e := mustEngine(t)
	card := fsrs.Card{State: fsrs.New, Due: date(2024, 1, 1)}
	logs := []fsrs.ReviewLog{
		{Grade: fsrs.Good, ReviewedAt: date(2024, 1, 10), PriorState: fsrs.New},
		{Grade: fsrs.Good, ReviewedAt: date(2024, 1, 5), PriorState: fsrs.Learning},
	}
	_, err := Replay(e, card, logs)
	assert.ErrorIs(t, err, ErrOutOfOrder)
}
