/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package dateparser converts free-form, human-written date/time strings
// into a normalized absolute instant in UTC. Callers supply a single text
// string with no schema and no format hint; the package identifies which of
// a fixed set of recognized formats the string matches, parses it according
// to that format, and returns the corresponding time.Time.
//
// The package is a pipeline of matchers (one per recognized format family),
// a recognizer that tries them in a fixed order and stops at the first
// shape match, a defaulter that fills in whatever the matcher left blank
// using caller-supplied configuration, and a normalizer that turns the
// filled wall-clock fields plus a resolved zone into a UTC instant.
package dateparser
