/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import (
	"strings"
	"time"
)

// monthLookup maps a lowercased month token (full English name, 3-letter
// abbreviation, or "sept"; trailing period already stripped by
// monthFromName) to its time.Month. Two-letter or other nonstandard forms
// are intentionally absent so monthFromName rejects them.
var monthLookup = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// monthFromName resolves a month token per §4.1: full English names, three
// letter abbreviations (plus "Sept"), and an abbreviation followed by a
// period, all case-insensitive. Anything else is rejected.
func monthFromName(s string) (time.Month, bool) {
	s = strings.ToLower(strings.TrimSuffix(s, "."))
	m, ok := monthLookup[s]
	return m, ok
}

// monthNameRegex matches any token monthFromName can resolve, for embedding
// in matcher regular expressions.
const monthNameRegex = `(?i)[a-z]{3,9}\.?`
