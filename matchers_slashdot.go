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

func resolveSlashYear(raw string) int {
	if len(raw) == 2 {
		return twoDigitYear(atoi(raw))
	}
	return atoi(raw)
}

// usSlashDateMatcher is family 18: "M/D/YYYY[ HH:MM[:SS][.fff][am|pm]]",
// also "M/D/YY" per the two-digit year policy. Month-first, per §4.1's
// date/month ordering policy; day-first is not supported.
var usSlashDateMatcher = &regexMatcher{
	name: "us-slash-date",
	re: regexp.MustCompile(`^(?P<month>\d{1,2})/(?P<day>\d{1,2})/(?P<year>\d{4}|\d{2})` +
		`(?:\s+(?P<hour>\d{1,2}):(?P<minute>\d{2})(?::(?P<second>\d{2})(?:\.(?P<frac>\d+))?)?\s*(?P<ampm>[AaPp][Mm])?)?$`),
	build: func(name string, g map[string]string) (components, error) {
		month, day := atoi(g["month"]), atoi(g["day"])
		year := resolveSlashYear(g["year"])
		if err := validateMonthDay(name, month, day); err != nil {
			return components{}, err
		}
		c := components{
			year: year, month: time.Month(month), day: day,
			hasYear: true, hasDate: true,
		}
		if g["hour"] != "" {
			hour, minute, second, err := buildClockTime(name, g)
			if err != nil {
				return components{}, err
			}
			c.hour, c.minute, c.second, c.nsec = hour, minute, second, nsecFromFraction(g["frac"])
			c.hasTime = true
		}
		return c, nil
	},
}

// bigEndianSlashDateMatcher is family 19: "YYYY/M/D[ HH:MM[:SS][.fff]]".
var bigEndianSlashDateMatcher = &regexMatcher{
	name: "big-endian-slash-date",
	re: regexp.MustCompile(`^(?P<year>\d{4})/(?P<month>\d{1,2})/(?P<day>\d{1,2})` +
		`(?:\s+(?P<hour>\d{2}):(?P<minute>\d{2})(?::(?P<second>\d{2})(?:\.(?P<frac>\d+))?)?)?$`),
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
			hour, minute := atoi(g["hour"]), atoi(g["minute"])
			second := atoiDefault(g["second"], 0)
			if err := validateTimeFields(name, hour, minute, second); err != nil {
				return components{}, err
			}
			c.hour, c.minute, c.second, c.nsec = hour, minute, second, nsecFromFraction(g["frac"])
			c.hasTime = true
		}
		return c, nil
	},
}

// dotDateMatcher is family 20: "M.D.YYYY" and "YYYY.M.D", date-only.
var dotDateMatcher = &regexMatcher{
	name: "dot-date",
	re:   regexp.MustCompile(`^(?:(?P<month>\d{1,2})\.(?P<day>\d{1,2})\.(?P<year>\d{4})|(?P<yyear>\d{4})\.(?P<ymonth>\d{1,2})\.(?P<yday>\d{1,2}))$`),
	build: func(name string, g map[string]string) (components, error) {
		var year, month, day int
		if g["year"] != "" {
			year, month, day = atoi(g["year"]), atoi(g["month"]), atoi(g["day"])
		} else {
			year, month, day = atoi(g["yyear"]), atoi(g["ymonth"]), atoi(g["yday"])
		}
		if err := validateMonthDay(name, month, day); err != nil {
			return components{}, err
		}
		return components{
			year: year, month: time.Month(month), day: day,
			hasYear: true, hasDate: true,
		}, nil
	},
}
