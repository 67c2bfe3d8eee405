/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import "time"

// normalize builds the final UTC Instant from a fully-defaulted components
// value, per §4.4.
func normalize(matcherName string, c components) (time.Time, error) {
	loc := c.zone
	if loc == nil {
		loc = time.UTC
	}

	t := time.Date(c.year, c.month, c.day, c.hour, c.minute, c.second, c.nsec, loc)

	// Round-trip check: time.Date silently normalizes out-of-range fields
	// (e.g. February 30 rolls into March) and nonexistent spring-forward
	// wall-clocks get shifted by an hour by Go. Either case means what we got
	// back doesn't match what we asked for, so the wall-clock was invalid.
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	if y != c.year || mo != c.month || d != c.day || h != c.hour || mi != c.minute || s != c.second {
		return time.Time{}, invalidf(matcherName,
			"wall-clock %04d-%02d-%02d %02d:%02d:%02d does not exist in %s",
			c.year, int(c.month), c.day, c.hour, c.minute, c.second, loc)
	}

	t = resolveFallBack(t)
	return t.UTC(), nil
}

// resolveFallBack picks the earlier of the two valid instants when the
// wall-clock fell in a DST fall-back repeat window. Go's time package does
// not expose zone-transition tables, so this is a best-effort local
// reconstruction: it compares the offset in effect 90 minutes before the
// resolved instant (almost certainly outside the one-hour repeat window)
// against the offset Go actually picked, and re-resolves with the earlier
// offset when they disagree and the zone really was on that offset at the
// re-resolved instant (so the wall-clock exists twice).
func resolveFallBack(t time.Time) time.Time {
	_, offset := t.Zone()
	probe := t.Add(-90 * time.Minute)
	_, probeOffset := probe.Zone()
	if probeOffset == offset {
		return t
	}
	earlier := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(t.Location().String(), probeOffset))
	if _, earlierOffset := earlier.In(t.Location()).Zone(); earlier.Before(t) && earlierOffset == probeOffset {
		return earlier
	}
	return t
}
