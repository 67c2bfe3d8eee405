/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import "regexp"

// monthDayTimeMatcher is family 11: "Mon D [at] H:MMam|pm" or
// "Mon D HH:MM:SS", with no year. The defaulter fills the year from the
// current year in default_zone per §4.3.
var monthDayTimeMatcher = &regexMatcher{
	name: "month-day-time",
	re: regexp.MustCompile(`^(?P<month>` + monthNameRegex + `)\s+(?P<day>\d{1,2})\s+(?:at\s+)?` +
		`(?:(?P<hour12>\d{1,2}):(?P<minute12>\d{2})\s*(?P<ampm>[AaPp][Mm])` +
		`|(?P<hour24>\d{2}):(?P<minute24>\d{2}):(?P<second>\d{2}))$`),
	build: func(name string, g map[string]string) (components, error) {
		month, ok := monthFromName(g["month"])
		if !ok {
			return components{}, errDecline
		}
		day := atoi(g["day"])

		var hour, minute, second int
		if g["ampm"] != "" {
			hour = atoi(g["hour12"])
			minute = atoi(g["minute12"])
			if hour < 1 || hour > 12 {
				return components{}, invalidf(name, "hour %d out of range for am/pm form", hour)
			}
			hour = applyAMPM(hour, g["ampm"])
		} else {
			hour = atoi(g["hour24"])
			minute = atoi(g["minute24"])
			second = atoi(g["second"])
		}
		if err := validateMonthDay(name, int(month), day); err != nil {
			return components{}, err
		}
		if err := validateTimeFields(name, hour, minute, second); err != nil {
			return components{}, err
		}
		return components{
			month: month, day: day,
			hour: hour, minute: minute, second: second,
			hasDate: true, hasTime: true,
		}, nil
	},
}

// monthDayYearTimeMatcher is family 12: "Mon D, YYYY[,] HH:MM[:SS][am|pm]".
var monthDayYearTimeMatcher = &regexMatcher{
	name: "month-day-year-time",
	re: regexp.MustCompile(`^(?P<month>` + monthNameRegex + `)\s+(?P<day>\d{1,2}),?\s+(?P<year>\d{4}),?\s+` +
		`(?P<hour>\d{1,2}):(?P<minute>\d{2})(?::(?P<second>\d{2}))?\s*(?P<ampm>[AaPp][Mm])?$`),
	build: func(name string, g map[string]string) (components, error) {
		month, ok := monthFromName(g["month"])
		if !ok {
			return components{}, errDecline
		}
		day, year := atoi(g["day"]), atoi(g["year"])
		hour, minute, second, err := buildClockTime(name, g)
		if err != nil {
			return components{}, err
		}
		if err := validateDateFields(name, year, int(month), day); err != nil {
			return components{}, err
		}
		return components{
			year: year, month: month, day: day,
			hour: hour, minute: minute, second: second,
			hasYear: true, hasDate: true, hasTime: true,
		}, nil
	},
}

// monthDayYearTimeZoneMatcher is family 13: the same shape with an "at"
// before the time, a trailing zone-token, or both. It declines the bare
// shape, which is family 12's.
var monthDayYearTimeZoneMatcher = &regexMatcher{
	name: "month-day-year-time-zone",
	re: regexp.MustCompile(`^(?P<month>` + monthNameRegex + `)\s+(?P<day>\d{1,2}),?\s+(?P<year>\d{4}),?\s+(?:(?P<at>at)\s+)?` +
		`(?P<hour>\d{1,2}):(?P<minute>\d{2})(?::(?P<second>\d{2}))?\s*(?P<ampm>[AaPp][Mm])?(?:\s+(?P<zone>` + zoneAbbrevRegex + `))?$`),
	build: func(name string, g map[string]string) (components, error) {
		if g["at"] == "" && g["zone"] == "" {
			return components{}, errDecline
		}
		month, ok := monthFromName(g["month"])
		if !ok {
			return components{}, errDecline
		}
		day, year := atoi(g["day"]), atoi(g["year"])
		hour, minute, second, err := buildClockTime(name, g)
		if err != nil {
			return components{}, err
		}
		if err := validateDateFields(name, year, int(month), day); err != nil {
			return components{}, err
		}
		c := components{
			year: year, month: month, day: day,
			hour: hour, minute: minute, second: second,
			hasYear: true, hasDate: true, hasTime: true,
		}
		if g["zone"] != "" {
			loc, ok := zoneFromAbbrev(g["zone"])
			if !ok {
				return components{}, errDecline
			}
			c.hasZone = true
			c.zone = loc
		}
		return c, nil
	},
}
