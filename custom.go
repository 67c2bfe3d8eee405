/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// layoutMatcher adapts a caller-supplied time.Parse reference layout into a
// matcher, the way timegrinder's CustomFormat adapts a user regex/layout
// pair into a Processor.
type layoutMatcher struct {
	name    string
	re      *regexp.Regexp
	layout  string
	hasZone bool
}

func (m *layoutMatcher) Name() string { return m.name }

func (m *layoutMatcher) Parse(s string) (components, bool, error) {
	if !m.re.MatchString(s) {
		return components{}, false, nil
	}
	t, err := time.Parse(m.layout, s)
	if err != nil {
		return components{}, false, invalidf(m.name, "does not match layout %q: %v", m.layout, err)
	}
	c := components{
		year: t.Year(), month: t.Month(), day: t.Day(),
		hour: t.Hour(), minute: t.Minute(), second: t.Second(), nsec: t.Nanosecond(),
		hasYear: true, hasDate: true, hasTime: true,
	}
	if m.hasZone {
		c.hasZone = true
		c.zone = t.Location()
	}
	return c, true, nil
}

// zoneRefTokens are the reference-time substrings (see the package doc of
// the standard "time" package) that indicate a layout carries its own zone,
// as opposed to leaving the zone for the caller's default to fill in.
var zoneRefTokens = []string{"Z07:00", "Z0700", "-07:00", "-0700", "-07", "MST"}

func layoutHasZoneRef(layout string) bool {
	for _, tok := range zoneRefTokens {
		if strings.Contains(layout, tok) {
			return true
		}
	}
	return false
}

// RegisterFormat adds a caller-defined format to p, tried before every
// built-in matcher (highest priority), mirroring how the teacher's
// AddProcessor prepends custom processors ahead of the built-in ones.
//
// regex must anchor the shape of the format (typically with ^ and $); layout
// is a reference-time layout per the standard "time" package. RegisterFormat
// validates the pair by formatting the current time with layout and
// confirming both that regex matches the result and that time.Parse can
// round-trip it, the same two-step check timegrinder.NewCustomProcessor
// performs.
func (p *Parser) RegisterFormat(name, regex, layout string) error {
	re, err := regexp.Compile(regex)
	if err != nil {
		return fmt.Errorf("dateparser: invalid regex for format %q: %w", name, err)
	}
	sample := p.clock.Now().UTC().Format(layout)
	if !re.MatchString(sample) {
		return fmt.Errorf("dateparser: regex for format %q does not match its own layout's output %q", name, sample)
	}
	if _, err := time.Parse(layout, sample); err != nil {
		return fmt.Errorf("dateparser: layout for format %q does not round-trip: %w", name, err)
	}
	p.custom = append(p.custom, &layoutMatcher{
		name:    name,
		re:      re,
		layout:  layout,
		hasZone: layoutHasZoneRef(layout),
	})
	return nil
}
