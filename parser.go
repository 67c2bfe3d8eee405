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

// Config controls how a Parser reads "now". The zero value is the default
// configuration: a system clock and no custom formats.
type Config struct {
	// Clock supplies "now" for default time-of-day, default date, and
	// default year resolution. Defaults to the system clock when nil.
	Clock Clock
}

// Parser recognizes and parses free-form date/time strings. A Parser holds
// no mutable state beyond its registered custom formats. Its parsing
// methods are safe for concurrent use by any number of goroutines, per §5;
// RegisterFormat changes the custom format list without locking and is not
// safe to call concurrently with any other method.
type Parser struct {
	clock  Clock
	custom []matcher
}

// New constructs a Parser from cfg.
func New(cfg Config) (*Parser, error) {
	clk := cfg.Clock
	if clk == nil {
		clk = systemClock{}
	}
	return &Parser{clock: clk}, nil
}

// ParseWith is the fullest entry point: it parses input against defaultZone
// and defaultTime (used to fill whatever the matched format left blank).
func (p *Parser) ParseWith(input string, defaultZone *time.Location, defaultTime TimeOfDay) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	c, name, err := p.recognize(trimmed)
	if err != nil {
		return time.Time{}, err
	}
	applyDefaults(&c, p.clock, defaultZone, defaultTime)
	return normalize(name, c)
}

// ParseWithTimezone parses input with zone as the default zone and the
// current time-of-day in zone as the default time.
func (p *Parser) ParseWithTimezone(input string, zone *time.Location) (time.Time, error) {
	now := p.clock.Now().In(zone)
	return p.ParseWith(input, zone, TimeOfDayOf(now))
}

// Parse parses input with UTC as the default zone and the current UTC
// time-of-day as the default time.
func (p *Parser) Parse(input string) (time.Time, error) {
	return p.ParseWithTimezone(input, time.UTC)
}

// DebugParse reports which matcher family accepted input (the empty string
// on Unrecognized), alongside the parsed Instant, for diagnostics.
func (p *Parser) DebugParse(input string) (time.Time, string, error) {
	trimmed := strings.TrimSpace(input)
	c, name, err := p.recognize(trimmed)
	if err != nil {
		return time.Time{}, name, err
	}
	applyDefaults(&c, p.clock, time.UTC, TimeOfDayOf(p.clock.Now().UTC()))
	t, err := normalize(name, c)
	return t, name, err
}

// dp is the package-level default Parser, mirroring the teacher's default
// tg instance. It is constructed once at init time with a system clock and
// no custom formats.
var dp, _ = New(Config{})

// Parse is a package-level convenience wrapping dp.Parse.
func Parse(input string) (time.Time, error) { return dp.Parse(input) }

// ParseWithTimezone is a package-level convenience wrapping
// dp.ParseWithTimezone.
func ParseWithTimezone(input string, zone *time.Location) (time.Time, error) {
	return dp.ParseWithTimezone(input, zone)
}

// ParseWith is a package-level convenience wrapping dp.ParseWith.
func ParseWith(input string, defaultZone *time.Location, defaultTime TimeOfDay) (time.Time, error) {
	return dp.ParseWith(input, defaultZone, defaultTime)
}

// RegisterFormat registers a custom format on the package-level default
// Parser. Most callers that need custom formats should construct their own
// Parser via New instead, to avoid interfering with other users of the
// package default.
func RegisterFormat(name, regex, layout string) error {
	return dp.RegisterFormat(name, regex, layout)
}
