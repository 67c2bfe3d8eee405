/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import "time"

// TimeOfDay is a wall-clock time with no associated date or zone. It is the
// default time applied to date-only inputs: supplied by the caller to
// ParseWith, or derived from "now" by Parse and ParseWithTimezone.
type TimeOfDay struct {
	Hour, Minute, Second, Nanosecond int
}

// TimeOfDayOf extracts the wall-clock time portion of t, discarding its
// date and zone.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

// Clock supplies "now" to the engine. §5 and §9 call out the clock read as
// the only external dependency a call makes (to resolve default_time when
// the caller doesn't supply one, and to resolve "today" for time-only
// inputs and "this year" for year-less inputs); it is made injectable here
// so tests can pin it.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock, backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
