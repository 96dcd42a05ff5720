package tui_cmd

import L "phototree/logger"

const usageStr string = `
USAGE
phototree tui [OPTIONS] SOURCE

DESCRIPTION
Launches the interactive Terminal User Interface for browsing the SOURCE
catalog: folders on the left, their files and the duplicate groups of the
whole catalog on the right. Read-only. The view refreshes while a scan of
the same source is running.

OPTIONS
--config, -c
Path to config file

--log-level, -L <log-level>
Accepted values: debug, info, warn, error, silent

--color <color-mode>
Accepted values: auto, always, never
`

func PrintUsage() {
	L.Print(usageStr)
}
