/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

// builtinMatchers is the fixed dispatch order of §4.1. Its order is part of
// the contract: later matchers must never accept a string an earlier one
// would, so the first match wins deterministically.
var builtinMatchers = []matcher{
	unixTimestampMatcher{},           // 1
	rfc3339Matcher,                   // 2
	rfc2822Matcher,                   // 3
	postgresMatcher,                  // 4
	zonelessDateTimeMatcher,          // 5
	zonedDateTimeMatcher,             // 6
	dateOnlyMatcher,                  // 7
	dateWithZoneMatcher,              // 8
	timeOnlyMatcher,                  // 9
	timeWithZoneMatcher,              // 10
	monthDayTimeMatcher,              // 11
	monthDayYearTimeMatcher,          // 12
	monthDayYearTimeZoneMatcher,      // 13
	yearMonthNameDayMatcher,          // 14
	monthDayYearMatcher,              // 15
	dayMonthNameYearTimeMatcher,      // 16
	dayMonthNameYearMatcher,          // 17
	usSlashDateMatcher,               // 18
	bigEndianSlashDateMatcher,        // 19
	dotDateMatcher,                   // 20
	mysqlLogMatcher,                  // 21
	chineseDateTimeMatcher,           // 22
}

// recognize tries p's custom matchers (highest priority, most recently
// registered first is not guaranteed — they are tried in registration
// order) followed by the fixed builtin order, returning the first accepted
// result. It surfaces the first Invalid it sees and only returns
// ErrUnrecognized once every matcher has declined.
func (p *Parser) recognize(trimmed string) (components, string, error) {
	for _, m := range p.custom {
		c, ok, err := m.Parse(trimmed)
		if err != nil {
			return components{}, m.Name(), err
		}
		if ok {
			return c, m.Name(), nil
		}
	}
	for _, m := range builtinMatchers {
		c, ok, err := m.Parse(trimmed)
		if err != nil {
			return components{}, m.Name(), err
		}
		if ok {
			return c, m.Name(), nil
		}
	}
	return components{}, "", ErrUnrecognized
}
