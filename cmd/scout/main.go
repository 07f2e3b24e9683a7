// Command scout inspects rankings, schedules, and rosters from the configured source and exports snapshots.
package main

import "os"

func main() {
	if err := newRootCmd(defaultSourceBuilder).Execute(); err != nil {
		os.Exit(1)
	}
}
