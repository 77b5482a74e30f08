package entity

import "time"

// BackoffState is the persisted throttle applied after ignored suggestions.
// LastEventTimestamp is nil until the first recorded dismissal.
type BackoffState struct {
	LastEventTimestamp *int64 // milliseconds since epoch
	RemainingBackoffMs int64
	StageIndex         int64
}

// HasHistory reports whether a dismissal was ever recorded.
func (s BackoffState) HasHistory() bool {
	return s.LastEventTimestamp != nil
}

// Remaining returns the remaining backoff as a duration, never negative.
func (s BackoffState) Remaining() time.Duration {
	if s.RemainingBackoffMs <= 0 {
		return 0
	}
	return time.Duration(s.RemainingBackoffMs) * time.Millisecond
}

// RemainingAt returns the backoff left at now, without persisting anything.
func (s BackoffState) RemainingAt(now time.Time) time.Duration {
	if s.LastEventTimestamp == nil {
		return 0
	}
	left := s.RemainingBackoffMs - (now.UnixMilli() - *s.LastEventTimestamp)
	if left <= 0 {
		return 0
	}
	return time.Duration(left) * time.Millisecond
}

// BackoffTable lists wait durations in ascending order, one per stage.
type BackoffTable []time.Duration

// DefaultBackoffTable escalates from one minute to ten days.
var DefaultBackoffTable = BackoffTable{
	time.Minute,
	30 * time.Minute,
	time.Hour,
	2 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	48 * time.Hour,
	7 * 24 * time.Hour,
	10 * 24 * time.Hour,
}

// ClampStage bounds stage to a valid index of the table.
func (t BackoffTable) ClampStage(stage int64) int {
	if len(t) == 0 || stage < 0 {
		return 0
	}
	if stage >= int64(len(t)) {
		return len(t) - 1
	}
	return int(stage)
}

// DurationAt returns the duration for stage, clamped to the table bounds.
// An empty table yields zero.
func (t BackoffTable) DurationAt(stage int64) time.Duration {
	if len(t) == 0 {
		return 0
	}
	return t[t.ClampStage(stage)]
}
