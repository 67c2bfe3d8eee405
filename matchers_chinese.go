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

// chineseDateTimeMatcher is family 22: "YYYY年MM月DD日[HH时MM分SS秒]", the one
// non-English form this package accepts, per the fixed Chinese date
// carve-out in §1's non-goals.
var chineseDateTimeMatcher = &regexMatcher{
	name: "chinese-datetime",
	re: regexp.MustCompile(`^(?P<year>\d{4})年(?P<month>\d{1,2})月(?P<day>\d{1,2})日` +
		`(?:(?P<hour>\d{1,2})时(?P<minute>\d{1,2})分(?P<second>\d{1,2})秒)?$`),
	build: func(name string, g map[string]string) (components, error) {
		year, month, day := atoi(g["year"]), atoi(g["month"]), atoi(g["day"])
		if err := validateMonthDay(name, month, day); err != nil {
			return components{}, err
		}
		c := components{
			year: year, month: time.Month(month), day: day,
			hasYear: true, hasDate: true,
		}
		if g["hour"] != "" {
			hour, minute, second := atoi(g["hour"]), atoi(g["minute"]), atoi(g["second"])
			if err := validateTimeFields(name, hour, minute, second); err != nil {
				return components{}, err
			}
			c.hour, c.minute, c.second = hour, minute, second
			c.hasTime = true
		}
		return c, nil
	},
}
