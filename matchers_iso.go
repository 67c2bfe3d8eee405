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

// rfc3339Matcher is family 2: YYYY-MM-DDTHH:MM:SS[.fff][Z|±HH:MM].
var rfc3339Matcher = &regexMatcher{
	name: "rfc3339",
	re: regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})T` +
		`(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})(?:\.(?P<frac>\d+))?` +
		`(?P<zone>Z|[+-]\d{2}:?\d{2})$`),
	build: func(name string, g map[string]string) (components, error) {
		year, month, day := atoi(g["year"]), atoi(g["month"]), atoi(g["day"])
		hour, minute, second := atoi(g["hour"]), atoi(g["minute"]), atoi(g["second"])
		if err := validateDateFields(name, year, month, day); err != nil {
			return components{}, err
		}
		if err := validateTimeFields(name, hour, minute, second); err != nil {
			return components{}, err
		}
		loc, ok := zoneFromToken(g["zone"])
		if !ok {
			return components{}, invalidf(name, "unresolvable zone %q", g["zone"])
		}
		return components{
			year: year, month: time.Month(month), day: day,
			hour: hour, minute: minute, second: second, nsec: nsecFromFraction(g["frac"]),
			hasYear: true, hasDate: true, hasTime: true, hasZone: true,
			zone: loc,
		}, nil
	},
}

// rfc2822Matcher is family 3: "Day, DD Mon YYYY HH:MM:SS zone". The weekday
// is captured but never cross-checked against the date, per §4.1.
var rfc2822Matcher = &regexMatcher{
	name: "rfc2822",
	re: regexp.MustCompile(`^[A-Za-z]{3},\s+(?P<day>\d{1,2})\s+(?P<month>` + monthNameRegex + `)\s+` +
		`(?P<year>\d{4})\s+(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})\s+` +
		`(?P<zone>[A-Za-z]+|[+-]\d{4})$`),
	build: func(name string, g map[string]string) (components, error) {
		month, ok := monthFromName(g["month"])
		if !ok {
			return components{}, errDecline
		}
		day, year := atoi(g["day"]), atoi(g["year"])
		hour, minute, second := atoi(g["hour"]), atoi(g["minute"]), atoi(g["second"])
		if err := validateDateFields(name, year, int(month), day); err != nil {
			return components{}, err
		}
		if err := validateTimeFields(name, hour, minute, second); err != nil {
			return components{}, err
		}
		loc, ok := zoneFromToken(g["zone"])
		if !ok {
			return components{}, errDecline
		}
		return components{
			year: year, month: month, day: day,
			hour: hour, minute: minute, second: second,
			hasYear: true, hasDate: true, hasTime: true, hasZone: true,
			zone: loc,
		}, nil
	},
}
