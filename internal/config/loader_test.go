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
	"strings"
	"testing"
)

func TestLoadConfigBytes(t *testing.T) {
	var zc ZonesConfig
	b := []byte("[global]\nzone=UTC\nzone=America/Chicago\n")
	if err := LoadConfigBytes(&zc, b); err != nil {
		t.Fatal(err)
	}
	if want := []string{"UTC", "America/Chicago"}; !equalSlices(zc.Global.Zone, want) {
		t.Fatalf("got %v, want %v", zc.Global.Zone, want)
	}
}

func TestLoadConfigBytesTooLarge(t *testing.T) {
	var zc ZonesConfig
	b := []byte(strings.Repeat("x", int(maxConfigSize)+1))
	if err := LoadConfigBytes(&zc, b); err != ErrConfigFileTooLarge {
		t.Fatalf("expected ErrConfigFileTooLarge, got %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zones.conf")
	if err := os.WriteFile(path, []byte("[global]\nzone=UTC\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var zc ZonesConfig
	if err := LoadConfigFile(&zc, path); err != nil {
		t.Fatal(err)
	}
	if want := []string{"UTC"}; !equalSlices(zc.Global.Zone, want) {
		t.Fatalf("got %v, want %v", zc.Global.Zone, want)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	var zc ZonesConfig
	if err := LoadConfigFile(&zc, filepath.Join(t.TempDir(), "missing.conf")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
