/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadZonesSeedsDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.conf")
	zc, err := LoadZones(path)
	if err != nil {
		t.Fatal(err)
	}
	if !equalSlices(zc.Global.Zone, DefaultZones) {
		t.Fatalf("got %v, want %v", zc.Global.Zone, DefaultZones)
	}
}

func TestLoadZonesSeedsDefaultsWhenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.conf")
	if err := os.WriteFile(path, []byte("[global]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	zc, err := LoadZones(path)
	if err != nil {
		t.Fatal(err)
	}
	if !equalSlices(zc.Global.Zone, DefaultZones) {
		t.Fatalf("got %v, want %v", zc.Global.Zone, DefaultZones)
	}
}

func TestZonesConfigSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.conf")
	zc := &ZonesConfig{}
	zc.Global.Zone = []string{"UTC", "Asia/Tokyo"}
	if err := zc.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := LoadZones(path)
	if err != nil {
		t.Fatal(err)
	}
	if !equalSlices(got.Global.Zone, zc.Global.Zone) {
		t.Fatalf("got %v, want %v", got.Global.Zone, zc.Global.Zone)
	}
}

func TestZonesConfigAdd(t *testing.T) {
	zc := &ZonesConfig{}
	zc.Global.Zone = []string{"UTC"}
	zc.Add("Asia/Tokyo")
	zc.Add("UTC") // duplicate, should be a no-op
	want := []string{"UTC", "Asia/Tokyo"}
	if !equalSlices(zc.Global.Zone, want) {
		t.Fatalf("got %v, want %v", zc.Global.Zone, want)
	}
}

func TestZonesConfigDelete(t *testing.T) {
	zc := &ZonesConfig{}
	zc.Global.Zone = []string{"UTC", "Asia/Tokyo", "America/Chicago"}
	if !zc.Delete("Asia/Tokyo") {
		t.Fatal("expected Delete to report the zone was present")
	}
	if want := []string{"UTC", "America/Chicago"}; !equalSlices(zc.Global.Zone, want) {
		t.Fatalf("got %v, want %v", zc.Global.Zone, want)
	}
	if zc.Delete("Europe/Paris") {
		t.Fatal("expected Delete to report false for an absent zone")
	}
}

func TestZonesConfigReset(t *testing.T) {
	zc := &ZonesConfig{}
	zc.Global.Zone = []string{"Antarctica/Troll"}
	zc.Reset()
	if !equalSlices(zc.Global.Zone, DefaultZones) {
		t.Fatalf("got %v, want %v", zc.Global.Zone, DefaultZones)
	}
}
