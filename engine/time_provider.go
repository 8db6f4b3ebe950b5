package engine

import "time"

// Clock stamps column timings, frame durations and the movement gate
type Clock interface {
	Now() time.Time
}

// TimeProvider is the wall clock used outside tests
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now keeps the monotonic reading so Sub is immune to wall clock jumps
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
