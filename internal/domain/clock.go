package domain

import "time"

// Now returns the current UTC time at Postgres timestamp precision.
// Sub-microsecond remainders round up, so the result is never earlier than
// the moment of the call.
func Now() time.Time {
	return CeilMicro(time.Now().UTC())
}

// CeilMicro rounds t up to the next whole microsecond.
func CeilMicro(t time.Time) time.Time {
	trunc := t.Truncate(time.Microsecond)
	if trunc.Before(t) {
		return trunc.Add(time.Microsecond)
	}
	return trunc
}
