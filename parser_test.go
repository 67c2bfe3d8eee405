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
	"sync"
	"testing"
	"time"

	_ "time/tzdata"
)

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load location %q: %v", name, err)
	}
	return loc
}

// scenarios are the nine successful concrete end-to-end cases; the tenth
// (an impossible calendar date) is TestParseImpossibleCalendarDate.
func TestParseScenarios(t *testing.T) {
	la := mustLoc(t, "America/Los_Angeles")

	cases := []struct {
		name string
		run  func(t *testing.T) (time.Time, error)
		want time.Time
	}{
		{
			name: "unix seconds",
			run:  func(t *testing.T) (time.Time, error) { return Parse("1511648546") },
			want: time.Date(2017, 11, 25, 22, 22, 26, 0, time.UTC),
		},
		{
			name: "unix milliseconds",
			run:  func(t *testing.T) (time.Time, error) { return Parse("1620021848429") },
			want: time.Date(2021, 5, 3, 6, 4, 8, 429000000, time.UTC),
		},
		{
			name: "rfc3339 with micros",
			run:  func(t *testing.T) (time.Time, error) { return Parse("2021-05-01T01:17:02.604456Z") },
			want: time.Date(2021, 5, 1, 1, 17, 2, 604456000, time.UTC),
		},
		{
			name: "rfc2822",
			run:  func(t *testing.T) (time.Time, error) { return Parse("Wed, 02 Jun 2021 06:31:39 GMT") },
			want: time.Date(2021, 6, 2, 6, 31, 39, 0, time.UTC),
		},
		{
			name: "postgres style offset",
			run:  func(t *testing.T) (time.Time, error) { return Parse("2019-11-29 08:08:05-08") },
			want: time.Date(2019, 11, 29, 16, 8, 5, 0, time.UTC),
		},
		{
			name: "date-only default time",
			run: func(t *testing.T) (time.Time, error) {
				return ParseWith("2021-10-09", time.UTC, TimeOfDay{})
			},
			want: time.Date(2021, 10, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "time-only with default timezone",
			run: func(t *testing.T) (time.Time, error) {
				p, err := New(Config{Clock: fixedClock{time.Date(2021, 5, 14, 12, 0, 0, 0, time.UTC)}})
				if err != nil {
					t.Fatal(err)
				}
				return p.ParseWithTimezone("6:15pm", la)
			},
			want: time.Date(2021, 5, 15, 1, 15, 0, 0, time.UTC),
		},
		{
			name: "chinese datetime",
			run:  func(t *testing.T) (time.Time, error) { return Parse("2014年04月08日11时25分18秒") },
			want: time.Date(2014, 4, 8, 11, 25, 18, 0, time.UTC),
		},
		{
			name: "two digit year pivot",
			run:  func(t *testing.T) (time.Time, error) { return Parse("8/8/65 12:00 AM") },
			want: time.Date(1965, 8, 8, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.run(t)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestParseImpossibleCalendarDate(t *testing.T) {
	_, err := Parse("2021-02-30")
	if err == nil {
		t.Fatal("expected an error for February 30")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestParseUnrecognized(t *testing.T) {
	_, err := Parse("not a date at all")
	if !errors.Is(err, ErrUnrecognized) {
		t.Fatalf("expected ErrUnrecognized, got %v", err)
	}
}

func TestOutOfRangeFieldsAreInvalidNotUnrecognized(t *testing.T) {
	cases := []string{
		"2021-13-01",          // month 13
		"2021-01-32",          // day 32
		"2021-01-01 24:00:00", // hour 24
		"2021-01-01 00:60:00", // minute 60
		"2021-01-01 00:00:60", // second 60 (leap second)
	}
	for _, s := range cases {
		_, err := Parse(s)
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("%q: expected ErrInvalid, got %v", s, err)
		}
	}
}

func TestUnknownZoneAbbreviationDeclines(t *testing.T) {
	_, err := Parse("2021-05-01 01:17:02 ZZZZ")
	if !errors.Is(err, ErrUnrecognized) {
		t.Fatalf("expected ErrUnrecognized for unknown zone abbreviation, got %v", err)
	}
}

func TestDefaultZoneIndependence(t *testing.T) {
	la := mustLoc(t, "America/Los_Angeles")
	a, err := ParseWithTimezone("2021-05-01T01:17:02Z", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseWithTimezone("2021-05-01T01:17:02Z", la)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatalf("explicit-zone input should be independent of default zone: %v != %v", a, b)
	}
}

func TestDefaultZoneApplication(t *testing.T) {
	la := mustLoc(t, "America/Los_Angeles")
	utcResult, err := ParseWith("2021-05-01 01:17:02", time.UTC, TimeOfDay{})
	if err != nil {
		t.Fatal(err)
	}
	laResult, err := ParseWith("2021-05-01 01:17:02", la, TimeOfDay{})
	if err != nil {
		t.Fatal(err)
	}
	_, offset := laResult.In(la).Zone()
	want := utcResult.Add(-time.Duration(offset) * time.Second)
	if !laResult.Equal(want) {
		t.Fatalf("default-zone application mismatch: got %v, want %v", laResult, want)
	}
}

func TestIdempotentRFC3339Roundtrip(t *testing.T) {
	want := time.Date(2021, 5, 1, 1, 17, 2, 604456000, time.UTC)
	formatted := want.Format(time.RFC3339Nano)
	got, err := Parse(formatted)
	if err != nil {
		t.Fatalf("failed to re-parse %q: %v", formatted, err)
	}
	if !got.Equal(want) {
		t.Fatalf("round-trip mismatch: got %v, want %v", got, want)
	}
}

func TestOrderingStability(t *testing.T) {
	// A postgres-style offset string (family 4) must never fall through to
	// the zoneless matcher (family 5).
	got, err := Parse("2019-11-29 08:08:05-08")
	if err != nil {
		t.Fatal(err)
	}
	if got.Hour() != 16 {
		t.Fatalf("expected offset to be applied (hour 16 UTC), got hour %d", got.Hour())
	}
}

func TestGlobalParserConcurrency(t *testing.T) {
	const n = 64
	inputs := []string{
		"1511648546",
		"2021-05-01T01:17:02.604456Z",
		"Wed, 02 Jun 2021 06:31:39 GMT",
		"2019-11-29 08:08:05-08",
		"2021-10-09",
		"8/8/65 12:00 AM",
	}
	var wg sync.WaitGroup
	errs := make(chan error, n*len(inputs))
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, in := range inputs {
				if _, err := Parse(in); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("unexpected concurrent parse error: %v", err)
	}
}

func TestRegisterFormatCustom(t *testing.T) {
	p, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.RegisterFormat("ymd-slash", `^\d{4}/\d{2}/\d{2}$`, "2006/01/02"); err != nil {
		t.Fatalf("RegisterFormat failed: %v", err)
	}
	got, err := p.Parse("2021/05/01")
	if err != nil {
		t.Fatalf("custom format failed to parse: %v", err)
	}
	want := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)
	if !got.Truncate(24 * time.Hour).Equal(want) {
		t.Fatalf("got %v, want date %v", got, want)
	}
}

func TestDebugParseReportsMatcherName(t *testing.T) {
	p, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	_, name, err := p.DebugParse("1511648546")
	if err != nil {
		t.Fatal(err)
	}
	if name != "unix-timestamp" {
		t.Fatalf("expected unix-timestamp, got %q", name)
	}
	_, name, err = p.DebugParse("garbage")
	if !errors.Is(err, ErrUnrecognized) || name != "" {
		t.Fatalf("expected Unrecognized with empty matcher name, got name=%q err=%v", name, err)
	}
}
