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
	"time"
)

func buildDashDateTime(name string, g map[string]string) (int, time.Month, int, int, int, int, int, error) {
	year, month, day := atoi(g["year"]), atoi(g["month"]), atoi(g["day"])
	hour, minute := atoi(g["hour"]), atoi(g["minute"])
	second := atoiDefault(g["second"], 0)
	if err := validateDateFields(name, year, month, day); err != nil {
		return 0, 0, 0, 0, 0, 0, 0, err
	}
	if err := validateTimeFields(name, hour, minute, second); err != nil {
		return 0, 0, 0, 0, 0, 0, 0, err
	}
	return year, time.Month(month), day, hour, minute, second, nsecFromFraction(g["frac"]), nil
}

// postgresMatcher is family 4: "YYYY-MM-DD HH:MM[:SS][.fff]±HH[:MM]", the
// zone attached directly with no separating space.
var postgresMatcher = &regexMatcher{
	name: "postgres-datetime",
	re: regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})\s+` +
		`(?P<hour>\d{2}):(?P<minute>\d{2})(?::(?P<second>\d{2})(?:\.(?P<frac>\d+))?)?` +
		`(?P<zone>[+-]\d{2}(?::?\d{2})?)$`),
	build: func(name string, g map[string]string) (components, error) {
		year, month, day, hour, minute, second, nsec, err := buildDashDateTime(name, g)
		if err != nil {
			return components{}, err
		}
		loc, ok := zoneFromNumericOffset(g["zone"])
		if !ok {
			return components{}, invalidf(name, "unresolvable offset %q", g["zone"])
		}
		return components{
			year: year, month: month, day: day,
			hour: hour, minute: minute, second: second, nsec: nsec,
			hasYear: true, hasDate: true, hasTime: true, hasZone: true,
			zone: loc,
		}, nil
	},
}

// zonelessDateTimeMatcher is family 5: the same shape with no zone at all.
var zonelessDateTimeMatcher = &regexMatcher{
	name: "zoneless-datetime",
	re: regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})\s+` +
		`(?P<hour>\d{2}):(?P<minute>\d{2})(?::(?P<second>\d{2})(?:\.(?P<frac>\d+))?)?$`),
	build: func(name string, g map[string]string) (components, error) {
		year, month, day, hour, minute, second, nsec, err := buildDashDateTime(name, g)
		if err != nil {
			return components{}, err
		}
		return components{
			year: year, month: month, day: day,
			hour: hour, minute: minute, second: second, nsec: nsec,
			hasYear: true, hasDate: true, hasTime: true,
		}, nil
	},
}

// zonedDateTimeMatcher is family 6: the same shape followed by a
// space-separated zone abbreviation token (as opposed to family 4's
// directly-attached numeric offset).
var zonedDateTimeMatcher = &regexMatcher{
	name: "datetime-with-zone-token",
	re: regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})\s+` +
		`(?P<hour>\d{2}):(?P<minute>\d{2})(?::(?P<second>\d{2})(?:\.(?P<frac>\d+))?)?\s+` +
		`(?P<zone>` + zoneAbbrevRegex + `)$`),
	build: func(name string, g map[string]string) (components, error) {
		year, month, day, hour, minute, second, nsec, err := buildDashDateTime(name, g)
		if err != nil {
			return components{}, err
		}
		loc, ok := zoneFromAbbrev(g["zone"])
		if !ok {
			return components{}, errDecline
		}
		return components{
			year: year, month: month, day: day,
			hour: hour, minute: minute, second: second, nsec: nsec,
			hasYear: true, hasDate: true, hasTime: true, hasZone: true,
			zone: loc,
		}, nil
	},
}
