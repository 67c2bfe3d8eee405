/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import "time"

// applyDefaults fills whatever c's matcher left blank using the per-call
// configuration, per §4.3. It never overrides a field the matcher already
// produced.
func applyDefaults(c *components, clock Clock, defaultZone *time.Location, defaultTime TimeOfDay) {
	if !c.hasZone {
		c.withDefaultZone(defaultZone)
	}
	if !c.hasTime {
		c.withDefaultTime(defaultTime)
	}
	if !c.hasDate {
		now := clock.Now().In(c.zone)
		c.withDefaultDate(now.Year(), now.Month(), now.Day())
	} else if !c.hasYear {
		now := clock.Now().In(c.zone)
		c.withDefaultYear(now.Year())
	}
}
