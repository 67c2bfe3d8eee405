/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import (
	"regexp"
	"strconv"
	"time"
)

// unixTimestampRegex matches an optionally negative run of digits with
// nothing else around it. The digit count (not a fixed-width scheme)
// decides the unit per §4.1.
var unixTimestampRegex = regexp.MustCompile(`^-?[0-9]+$`)

// unixTimestampMatcher is family 1: a bare Unix timestamp whose unit
// (seconds/milliseconds/microseconds/nanoseconds) is inferred from how many
// digits it has. It builds components directly rather than going through
// regexMatcher/named groups since the result is a full Instant, not
// separate date/time fields.
type unixTimestampMatcher struct{}

func (unixTimestampMatcher) Name() string { return "unix-timestamp" }

func (unixTimestampMatcher) Parse(s string) (components, bool, error) {
	if !unixTimestampRegex.MatchString(s) {
		return components{}, false, nil
	}
	neg := false
	digits := s
	if digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	if digits == "" {
		return components{}, false, nil
	}
	n := len(digits)

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Too many digits for int64: shape matched but the value is
		// unusable.
		return components{}, false, invalidf("unix-timestamp", "value %q overflows", s)
	}
	if neg {
		v = -v
	}

	var t time.Time
	switch {
	case n <= 10:
		t = time.Unix(v, 0)
	case n <= 13:
		t = time.UnixMilli(v)
	case n <= 16:
		t = time.UnixMicro(v)
	default:
		t = time.Unix(0, v)
	}
	t = t.UTC()

	c := components{
		year: t.Year(), month: t.Month(), day: t.Day(),
		hour: t.Hour(), minute: t.Minute(), second: t.Second(), nsec: t.Nanosecond(),
		hasYear: true, hasDate: true, hasTime: true, hasZone: true,
		zone: time.UTC,
	}
	return c, true, nil
}
