/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import "regexp"

// dayMonthNameYearTimeMatcher is family 16: "DD Mon YYYY[,] HH:MM[:SS][.fff]".
var dayMonthNameYearTimeMatcher = &regexMatcher{
	name: "day-monthname-year-time",
	re: regexp.MustCompile(`^(?P<day>\d{1,2})\s+(?P<month>` + monthNameRegex + `)\s+(?P<year>\d{4}),?\s+` +
		`(?P<hour>\d{2}):(?P<minute>\d{2})(?::(?P<second>\d{2})(?:\.(?P<frac>\d+))?)?$`),
	build: func(name string, g map[string]string) (components, error) {
		month, ok := monthFromName(g["month"])
		if !ok {
			return components{}, errDecline
		}
		day, year := atoi(g["day"]), atoi(g["year"])
		hour, minute := atoi(g["hour"]), atoi(g["minute"])
		second := atoiDefault(g["second"], 0)
		if err := validateMonthDay(name, int(month), day); err != nil {
			return components{}, err
		}
		if err := validateTimeFields(name, hour, minute, second); err != nil {
			return components{}, err
		}
		return components{
			year: year, month: month, day: day,
			hour: hour, minute: minute, second: second, nsec: nsecFromFraction(g["frac"]),
			hasYear: true, hasDate: true, hasTime: true,
		}, nil
	},
}

// dayMonthNameYearMatcher is family 17: "DD Mon YYYY", date-only.
var dayMonthNameYearMatcher = &regexMatcher{
	name: "day-monthname-year",
	re:   regexp.MustCompile(`^(?P<day>\d{1,2})\s+(?P<month>` + monthNameRegex + `)\s+(?P<year>\d{4})$`),
	build: func(name string, g map[string]string) (components, error) {
		month, ok := monthFromName(g["month"])
		if !ok {
			return components{}, errDecline
		}
		day, year := atoi(g["day"]), atoi(g["year"])
		if err := validateMonthDay(name, int(month), day); err != nil {
			return components{}, err
		}
		return components{
			year: year, month: month, day: day,
			hasYear: true, hasDate: true,
		}, nil
	},
}
