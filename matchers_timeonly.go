/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import "regexp"

func buildClockTime(name string, g map[string]string) (int, int, int, error) {
	hour := atoi(g["hour"])
	minute := atoi(g["minute"])
	second := atoiDefault(g["second"], 0)
	ampm := g["ampm"]
	if ampm != "" {
		if hour < 1 || hour > 12 {
			return 0, 0, 0, invalidf(name, "hour %d out of range for am/pm form", hour)
		}
		hour = applyAMPM(hour, ampm)
	}
	if err := validateTimeFields(name, hour, minute, second); err != nil {
		return 0, 0, 0, err
	}
	return hour, minute, second, nil
}

// timeOnlyMatcher is family 9: "HH:MM[:SS]" or "H:MMam|pm" alone, with no
// date and no zone.
var timeOnlyMatcher = &regexMatcher{
	name: "time-only",
	re:   regexp.MustCompile(`^(?P<hour>\d{1,2}):(?P<minute>\d{2})(?::(?P<second>\d{2}))?\s*(?P<ampm>[AaPp][Mm])?$`),
	build: func(name string, g map[string]string) (components, error) {
		hour, minute, second, err := buildClockTime(name, g)
		if err != nil {
			return components{}, err
		}
		return components{
			hour: hour, minute: minute, second: second,
			hasTime: true,
		}, nil
	},
}

// timeWithZoneMatcher is family 10: the same shape followed by a
// space-separated zone abbreviation.
var timeWithZoneMatcher = &regexMatcher{
	name: "time-with-zone",
	re: regexp.MustCompile(`^(?P<hour>\d{1,2}):(?P<minute>\d{2})(?::(?P<second>\d{2}))?\s*(?P<ampm>[AaPp][Mm])?\s+` +
		`(?P<zone>` + zoneAbbrevRegex + `)$`),
	build: func(name string, g map[string]string) (components, error) {
		hour, minute, second, err := buildClockTime(name, g)
		if err != nil {
			return components{}, err
		}
		loc, ok := zoneFromAbbrev(g["zone"])
		if !ok {
			return components{}, errDecline
		}
		return components{
			hour: hour, minute: minute, second: second,
			hasTime: true, hasZone: true,
			zone: loc,
		}, nil
	},
}
