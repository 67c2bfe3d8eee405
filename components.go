/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import "time"

// components is the transient record a matcher fills in. It carries
// whichever subset of (year, month, day, hour, minute, second, nanosecond,
// zone) the matched text actually specified; the defaulter fills the rest
// from configuration before the normalizer builds the final instant.
//
// A components value is created inside a matcher, consumed by the
// defaulter and normalizer, and never exposed outside this package.
type components struct {
	year   int
	month  time.Month
	day    int
	hour   int
	minute int
	second int
	nsec   int

	hasYear bool // false for "Mon D HH:MM:SS" style inputs with no year
	hasDate bool // true once year (maybe), month, and day are all known
	hasTime bool // true once hour/minute are known
	hasZone bool

	zone *time.Location
}

// withDefaultTime overwrites the time-of-day fields. Used by the defaulter
// when a matcher produced a date-only components value.
func (c *components) withDefaultTime(t TimeOfDay) {
	c.hour, c.minute, c.second, c.nsec = t.Hour, t.Minute, t.Second, t.Nanosecond
	c.hasTime = true
}

// withDefaultDate overwrites the date fields. Used by the defaulter when a
// matcher produced a time-only components value.
func (c *components) withDefaultDate(year int, month time.Month, day int) {
	c.year, c.month, c.day = year, month, day
	c.hasYear = true
	c.hasDate = true
}

// withDefaultYear fills in just the year, for matchers (month-day formats)
// that parsed a month and day but never saw a year in the text.
func (c *components) withDefaultYear(year int) {
	c.year = year
	c.hasYear = true
}

// withDefaultZone resolves the zone when the matcher didn't find one in the text.
func (c *components) withDefaultZone(loc *time.Location) {
	c.zone = loc
	c.hasZone = true
}
