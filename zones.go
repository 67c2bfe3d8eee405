/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import (
	"strconv"
	"strings"
	"time"
)

// zoneAbbrevOffsets is the closed set of three/four-letter zone
// abbreviations (plus the literal Z) this package recognizes, mapped to their fixed UTC offset
// in seconds. Per §4.1/§9 this set is intentionally small and closed: an
// abbreviation outside this map is not resolved, it causes the matcher that
// found it to decline rather than guess. Adding an entry here is an
// API-visible change.
var zoneAbbrevOffsets = map[string]int{
	"UTC": 0,
	"GMT": 0,
	"Z":   0,

	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,

	"BST": 1 * 3600,
}

// zoneAbbrevRegex matches any token a zone abbreviation lookup might
// resolve; actual validity is decided by zoneFromAbbrev.
const zoneAbbrevRegex = `[A-Za-z]{1,4}`

// zoneFromAbbrev resolves a closed-set zone abbreviation (case-sensitive,
// as real-world log abbreviations are) to a fixed-offset *time.Location.
func zoneFromAbbrev(s string) (*time.Location, bool) {
	off, ok := zoneAbbrevOffsets[s]
	if !ok {
		return nil, false
	}
	return time.FixedZone(s, off), true
}

// zoneFromNumericOffset parses ±HHMM, ±HH:MM, or ±HH into a fixed-offset
// *time.Location. The literal "Z" is handled by the caller via
// zoneFromAbbrev before reaching here.
func zoneFromNumericOffset(s string) (*time.Location, bool) {
	if len(s) < 3 {
		return nil, false
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return nil, false
	}
	body := s[1:]
	body = strings.ReplaceAll(body, ":", "")
	var hh, mm int
	var err error
	switch len(body) {
	case 2: // ±HH
		hh, err = strconv.Atoi(body)
	case 4: // ±HHMM
		hh, err = strconv.Atoi(body[:2])
		if err == nil {
			mm, err = strconv.Atoi(body[2:])
		}
	default:
		return nil, false
	}
	if err != nil || hh > 23 || mm > 59 {
		return nil, false
	}
	offset := sign * (hh*3600 + mm*60)
	return time.FixedZone(offsetName(sign, hh, mm), offset), true
}

func offsetName(sign, hh, mm int) string {
	sb := strings.Builder{}
	if sign < 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	sb.WriteString(pad2(hh))
	sb.WriteByte(':')
	sb.WriteString(pad2(mm))
	return sb.String()
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// zoneFromToken resolves any of the three zone-token spellings §4.1
// accepts: the literal Z, a closed-set abbreviation, or a numeric offset.
func zoneFromToken(s string) (*time.Location, bool) {
	if s == "" {
		return nil, false
	}
	if s == "Z" || s == "z" {
		return time.UTC, true
	}
	if loc, ok := zoneFromAbbrev(s); ok {
		return loc, true
	}
	if s[0] == '+' || s[0] == '-' {
		return zoneFromNumericOffset(s)
	}
	return nil, false
}
