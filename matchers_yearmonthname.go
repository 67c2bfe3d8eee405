/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import "regexp"

// yearMonthNameDayMatcher is family 14: "YYYY-Mon-DD", date-only.
var yearMonthNameDayMatcher = &regexMatcher{
	name: "year-monthname-day",
	re:   regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>` + monthNameRegex + `)-(?P<day>\d{1,2})$`),
	build: func(name string, g map[string]string) (components, error) {
		month, ok := monthFromName(g["month"])
		if !ok {
			return components{}, errDecline
		}
		year, day := atoi(g["year"]), atoi(g["day"])
		if err := validateMonthDay(name, int(month), day); err != nil {
			return components{}, err
		}
		return components{
			year: year, month: month, day: day,
			hasYear: true, hasDate: true,
		}, nil
	},
}

// monthDayYearMatcher is family 15: "Mon D, YYYY", date-only.
var monthDayYearMatcher = &regexMatcher{
	name: "month-day-year",
	re:   regexp.MustCompile(`^(?P<month>` + monthNameRegex + `)\s+(?P<day>\d{1,2}),?\s+(?P<year>\d{4})$`),
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
