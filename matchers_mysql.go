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

// mysqlLogMatcher is family 21: the MySQL slow-query/general-log timestamp
// "YYMMDD HH:MM:SS", a fixed-width compact form distinct from the Unix
// timestamp family because of the embedded space.
var mysqlLogMatcher = &regexMatcher{
	name: "mysql-log",
	re:   regexp.MustCompile(`^(?P<yy>\d{2})(?P<month>\d{2})(?P<day>\d{2})\s+(?P<hour>\d{2}):(?P<minute>\d{2}):(?P<second>\d{2})$`),
	build: func(name string, g map[string]string) (components, error) {
		year := twoDigitYear(atoi(g["yy"]))
		month, day := atoi(g["month"]), atoi(g["day"])
		hour, minute, second := atoi(g["hour"]), atoi(g["minute"]), atoi(g["second"])
		if err := validateMonthDay(name, month, day); err != nil {
			return components{}, err
		}
		if err := validateTimeFields(name, hour, minute, second); err != nil {
			return components{}, err
		}
		return components{
			year: year, month: time.Month(month), day: day,
			hour: hour, minute: minute, second: second,
			hasYear: true, hasDate: true, hasTime: true,
		}, nil
	},
}
