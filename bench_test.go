/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import "testing"

// one representative input for each of a selection of matcher families, in
// dispatch order.
var benchInputs = []struct {
	name  string
	input string
}{
	{"unix-timestamp", "1511648546"},
	{"rfc3339", "2021-05-01T01:17:02.604456Z"},
	{"rfc2822", "Wed, 02 Jun 2021 06:31:39 GMT"},
	{"postgres-offset", "2019-11-29 08:08:05-08"},
	{"zoneless-datetime", "2021-05-01 01:17:02"},
	{"zoned-datetime", "2021-05-01 01:17:02 PST"},
	{"date-only", "2021-10-09"},
	{"date-with-zone", "2021-10-09 PST"},
	{"time-only", "6:15pm"},
	{"time-with-zone", "6:15pm PST"},
	{"month-day-time", "Jun 2 06:31:39"},
	{"us-slash", "8/8/65 12:00 AM"},
	{"mysql-log", "210502 06:31:39"},
	{"chinese-datetime", "2014年04月08日11时25分18秒"},
}

func BenchmarkParse(b *testing.B) {
	for _, c := range benchInputs {
		c := c
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Parse(c.input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseUnrecognized(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse("not a date at all"); err == nil {
			b.Fatal("expected ErrUnrecognized")
		}
	}
}
