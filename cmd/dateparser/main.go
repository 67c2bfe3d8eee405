/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	// Embed tzdata so that we don't rely on potentially broken timezone DBs on the host
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/gravwell/dateparser"
	"github.com/gravwell/dateparser/internal/config"
	"github.com/gravwell/dateparser/internal/render"
	"github.com/gravwell/dateparser/internal/version"
)

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".dateparser.conf")
}

var (
	shortFlag bool
	zoneFlag  string

	listFlag   bool
	resetFlag  bool
	addZone    string
	deleteZone string
)

func main() {
	root := &cobra.Command{
		Use:   "dateparser [date-string]",
		Short: "Parse a free-form date/time string and display it across configured timezones",
		Args:  cobra.MaximumNArgs(1),
		Run:   runRoot,
	}
	root.Flags().BoolVar(&shortFlag, "short", false, "print only the local rendering")
	root.Flags().StringVar(&zoneFlag, "zone", "", "default timezone to apply when the input carries none")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the persisted list of timezones",
		Run:   runConfig,
	}
	configCmd.Flags().BoolVar(&listFlag, "list", false, "print the configured zone list")
	configCmd.Flags().BoolVar(&resetFlag, "reset", false, "restore the default zone list")
	configCmd.Flags().StringVar(&addZone, "add", "", "add a zone to the list")
	configCmd.Flags().StringVar(&deleteZone, "delete", "", "remove a zone from the list")
	root.AddCommand(configCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion(os.Stdout)
		},
	}
	root.AddCommand(versionCmd)

	if err := root.Execute(); err != nil {
		log.Print(err)
		os.Exit(2)
	}
}

func runRoot(cmd *cobra.Command, args []string) {
	zc, err := config.LoadZones(configPath())
	if err != nil {
		log.Printf("failed to load zone config: %v", err)
		os.Exit(2)
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	}

	defaultZone := time.UTC
	if zoneFlag != "" {
		loc, err := time.LoadLocation(zoneFlag)
		if err != nil {
			log.Printf("unknown --zone %q: %v", zoneFlag, err)
			os.Exit(2)
		}
		defaultZone = loc
	}

	var t time.Time
	if input == "" {
		t = time.Now().UTC()
	} else {
		t, err = dateparser.ParseWithTimezone(input, defaultZone)
		if err != nil {
			fmt.Printf("%q: %v\n", input, err)
			os.Exit(1)
		}
	}

	if shortFlag {
		fmt.Println(t.In(time.Local).Format(time.RFC3339))
		return
	}

	type zoneRow struct {
		Zone string
		Time string
	}
	rows := make([]zoneRow, 0, len(zc.Global.Zone))
	for _, z := range zc.Global.Zone {
		loc, err := time.LoadLocation(z)
		if err != nil {
			rows = append(rows, zoneRow{Zone: z, Time: "unrecognized zone"})
			continue
		}
		rows = append(rows, zoneRow{Zone: z, Time: t.In(loc).Format(time.RFC3339)})
	}
	fmt.Println(render.ToTable(rows, []string{"Zone", "Time"}, render.TableOptions{}))
}

func runConfig(cmd *cobra.Command, args []string) {
	path := configPath()
	zc, err := config.LoadZones(path)
	if err != nil {
		log.Printf("failed to load zone config: %v", err)
		os.Exit(2)
	}

	changed := false
	if resetFlag {
		zc.Reset()
		changed = true
	}
	if addZone != "" {
		if _, err := time.LoadLocation(addZone); err != nil {
			log.Printf("refusing to add unrecognized zone %q: %v", addZone, err)
			os.Exit(1)
		}
		zc.Add(addZone)
		changed = true
	}
	if deleteZone != "" {
		zc.Delete(deleteZone)
		changed = true
	}

	if changed {
		if err := zc.Save(path); err != nil {
			log.Printf("failed to save zone config: %v", err)
			os.Exit(2)
		}
	}

	if listFlag || !changed {
		for _, z := range zc.Global.Zone {
			fmt.Println(z)
		}
	}
}
