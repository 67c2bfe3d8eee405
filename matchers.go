/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import (
	"errors"
	"regexp"
	"strconv"
)

// matcher is a pure, stateless predicate+parser for one format family. It
// has no side effects and no internal state; it is safe to invoke
// repeatedly and in any order, though the recognizer always tries them in
// the fixed order of §4.1.
//
// Parse answers three ways:
//   - ok=false, err=nil: the input doesn't have this format's shape. The
//     recognizer tries the next matcher.
//   - ok=false, err!=nil: the shape matched but a field was out of range or
//     otherwise unusable. The recognizer stops and surfaces the error; it
//     does not fall through to later matchers.
//   - ok=true, err=nil: success.
type matcher interface {
	Name() string
	Parse(s string) (components, bool, error)
}

// regexMatcher is the matcher implementation almost every format family
// uses: an anchored regular expression with named capture groups, plus a
// build function that turns the captured groups into components (or
// reports why the field values are invalid).
type regexMatcher struct {
	name  string
	re    *regexp.Regexp
	build func(name string, groups map[string]string) (components, error)
}

func (m *regexMatcher) Name() string { return m.name }

func (m *regexMatcher) Parse(s string) (components, bool, error) {
	match := m.re.FindStringSubmatch(s)
	if match == nil {
		return components{}, false, nil
	}
	groups := namedGroups(m.re, match)
	c, err := m.build(m.name, groups)
	if err == errDecline {
		return components{}, false, nil
	}
	if err != nil {
		return components{}, false, err
	}
	return c, true, nil
}

// errDecline is a build-function sentinel meaning the regex shape matched
// but a sub-token the shape depends on (most often a zone abbreviation
// outside the closed set) didn't resolve. Per §8 this is a decline, not an
// Invalid: the recognizer tries the next matcher rather than committing.
var errDecline = errors.New("dateparser: decline")

func namedGroups(re *regexp.Regexp, match []string) map[string]string {
	out := make(map[string]string, len(match))
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		out[name] = match[i]
	}
	return out
}

// atoi converts a digit-only capture group to an int. Capture groups that
// matched at all are guaranteed digit-only by their regex, so the error is
// unreachable in practice and ignored.
func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// atoiDefault converts a possibly-absent capture group, returning def when
// the group didn't participate in the match.
func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	return atoi(s)
}

// nsecFromFraction turns a fractional-second capture (the digits after the
// decimal point, with no leading dot) into nanoseconds, honouring up to 9
// digits and truncating (not rounding) anything beyond that, per §4.1.
func nsecFromFraction(frac string) int {
	if frac == "" {
		return 0
	}
	if len(frac) > 9 {
		frac = frac[:9]
	}
	for len(frac) < 9 {
		frac += "0"
	}
	return atoi(frac)
}

// validateDateFields checks the range invariants the normalizer doesn't
// catch on its own (month/day range; full calendar validity, e.g. February
// 30, is left to the normalizer's round-trip check).
func validateDateFields(name string, year, month, day int) error {
	return validateMonthDay(name, month, day)
}

// validateMonthDay is validateDateFields without a year, for matchers (such
// as "Mon D HH:MM:SS") that don't know the year yet when they run.
func validateMonthDay(name string, month, day int) error {
	if month < 1 || month > 12 {
		return invalidf(name, "month %d out of range", month)
	}
	if day < 1 || day > 31 {
		return invalidf(name, "day %d out of range", day)
	}
	return nil
}

// validateTimeFields checks hour/minute/second ranges. Leap seconds (:60)
// are rejected per §9; this package targets the standard Gregorian
// calendar with 86,400 SI seconds per day.
func validateTimeFields(name string, hour, minute, second int) error {
	if hour < 0 || hour > 23 {
		return invalidf(name, "hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return invalidf(name, "minute %d out of range", minute)
	}
	if second < 0 || second > 59 {
		return invalidf(name, "second %d out of range", second)
	}
	return nil
}

// twoDigitYear applies the pivot policy required by §8 scenario 9 ("65" ->
// 1965): 00-49 maps to 2000-2049, 50-99 maps to 1950-1999. See
// SPEC_FULL.md's Open Questions for why this departs from §4.1's literal
// 00-68/69-99 text.
func twoDigitYear(yy int) int {
	if yy <= 49 {
		return 2000 + yy
	}
	return 1900 + yy
}

// applyAMPM folds a parsed AM/PM designator into a 12-hour hour value,
// producing the 24-hour hour per §4.1: 12 AM -> 0, 12 PM -> 12, others map
// directly.
func applyAMPM(hour int, ampm string) int {
	switch ampm {
	case "am", "AM", "Am", "aM":
		if hour == 12 {
			return 0
		}
		return hour
	case "pm", "PM", "Pm", "pM":
		if hour == 12 {
			return 12
		}
		return hour + 12
	default:
		return hour
	}
}
