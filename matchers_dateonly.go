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

// dateOnlyMatcher is family 7: a bare YYYY-MM-DD with no time or zone.
var dateOnlyMatcher = &regexMatcher{
	name: "date-only",
	re:   regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})$`),
	build: func(name string, g map[string]string) (components, error) {
		year, month, day := atoi(g["year"]), atoi(g["month"]), atoi(g["day"])
		if err := validateDateFields(name, year, month, day); err != nil {
			return components{}, err
		}
		return components{
			year: year, month: time.Month(month), day: day,
			hasYear: true, hasDate: true,
		}, nil
	},
}

// dateWithZoneMatcher is family 8: "YYYY-MM-DD <zone-token>" or
// "YYYY-MM-DD±HH:MM" (the offset attached directly, no space).
var dateWithZoneMatcher = &regexMatcher{
	name: "date-with-zone",
	re: regexp.MustCompile(`^(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})` +
		`(?:\s+(?P<zoneabbr>` + zoneAbbrevRegex + `)|(?P<zoneoff>[+-]\d{2}:?\d{2}))$`),
	build: func(name string, g map[string]string) (components, error) {
		year, month, day := atoi(g["year"]), atoi(g["month"]), atoi(g["day"])
		if err := validateDateFields(name, year, month, day); err != nil {
			return components{}, err
		}
		var loc *time.Location
		var ok bool
		if g["zoneabbr"] != "" {
			loc, ok = zoneFromAbbrev(g["zoneabbr"])
		} else {
			loc, ok = zoneFromNumericOffset(g["zoneoff"])
		}
		if !ok {
			return components{}, errDecline
		}
		return components{
			year: year, month: time.Month(month), day: day,
			hasYear: true, hasDate: true, hasZone: true,
			zone: loc,
		}, nil
	},
}
