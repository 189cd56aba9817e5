package fsrs

import (
	"encoding/json"
	"testing"
	"time"
)

func TestReviewLogFields(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	rl := ReviewLog{
		Grade:         Good,
		ScheduledDays: 4,
		ElapsedDays:   0,
		ReviewedAt:    now,
		PriorState:    New,
	}
	if rl.Grade != Good {
		t.Errorf("Grade = %v, want Good", rl.Grade)
	}
	if rl.ScheduledDays != 4 {
		t.Errorf("ScheduledDays = %d, want 4", rl.ScheduledDays)
	}
	if !rl.ReviewedAt.Equal(now) {
		t.Errorf("ReviewedAt = %v, want %v", rl.ReviewedAt, now)
	}
	if rl.PriorState != New {
		t.Errorf("PriorState = %v, want New", rl.PriorState)
	}
}

func TestReviewLogJSONRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	rl := ReviewLog{
		Grade:         Hard,
		ScheduledDays: 14,
		ElapsedDays:   10,
		ReviewedAt:    now,
		PriorState:    Review,
	}

	data, err := json.Marshal(rl)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got ReviewLog
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.Grade != rl.Grade || got.ScheduledDays != rl.ScheduledDays ||
		got.ElapsedDays != rl.ElapsedDays || got.PriorState != rl.PriorState {
		t.Errorf("round-trip mismatch: got %+v", got)
	}
	if !got.ReviewedAt.Equal(rl.ReviewedAt) {
		t.Errorf("ReviewedAt round-trip mismatch: got %v, want %v", got.ReviewedAt, rl.ReviewedAt)
	}
}

func TestReviewLogJSONGradeAsString(t *testing.T) {
	rl := ReviewLog{
		Grade:      Easy,
		PriorState: Review,
		ReviewedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(rl)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if !searchSubstr(string(data), `"Easy"`) {
		t.Errorf("Grade should be string in JSON, got %s", data)
	}
	if !searchSubstr(string(data), `"Review"`) {
		t.Errorf("PriorState should be string in JSON, got %s", data)
	}
}
