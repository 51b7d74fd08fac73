package services

import "time"

// Clock returns the current time; services stamp rows with it
type Clock func() time.Time

// utcNow is truncated to the microsecond precision of TIMESTAMPTZ
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
