/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package config

import (
	"fmt"
	"os"
	"strings"
)

// DefaultZones seeds a fresh ZonesConfig the first time the CLI runs,
// before any config file exists on disk.
var DefaultZones = []string{"UTC", "America/New_York", "America/Los_Angeles"}

// ZonesConfig is the persisted, ordered list of zones the CLI renders a
// parsed instant across. It is read through LoadConfigFile /
// LoadConfigBytes (gcfg-backed) and written by Save; the core parser never touches this file
// directly, per spec.md §6.
type ZonesConfig struct {
	Global struct {
		Zone []string
	}
}

// LoadZones loads the zone list from path, seeding it with DefaultZones if
// the file doesn't exist yet or carries an empty list.
func LoadZones(path string) (*ZonesConfig, error) {
	var zc ZonesConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		zc.Global.Zone = append([]string{}, DefaultZones...)
		return &zc, nil
	}
	if err := LoadConfigFile(&zc, path); err != nil {
		return nil, err
	}
	if len(zc.Global.Zone) == 0 {
		zc.Global.Zone = append([]string{}, DefaultZones...)
	}
	return &zc, nil
}

// Save writes zc back to path in the same INI-style shape LoadZones reads.
func (zc *ZonesConfig) Save(path string) error {
	var sb strings.Builder
	sb.WriteString("[global]\n")
	for _, z := range zc.Global.Zone {
		fmt.Fprintf(&sb, "zone=%s\n", z)
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// Add appends zone to the list if it isn't already present.
func (zc *ZonesConfig) Add(zone string) {
	for _, z := range zc.Global.Zone {
		if z == zone {
			return
		}
	}
	zc.Global.Zone = append(zc.Global.Zone, zone)
}

// Delete removes zone from the list, reporting whether it was present.
func (zc *ZonesConfig) Delete(zone string) bool {
	for i, z := range zc.Global.Zone {
		if z == zone {
			zc.Global.Zone = append(zc.Global.Zone[:i], zc.Global.Zone[i+1:]...)
			return true
		}
	}
	return false
}

// Reset restores the list to DefaultZones.
func (zc *ZonesConfig) Reset() {
	zc.Global.Zone = append([]string{}, DefaultZones...)
}
