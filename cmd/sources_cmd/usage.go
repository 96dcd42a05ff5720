package sources_cmd

import L "phototree/logger"

const usageStr string = `
USAGE
phototree sources [OPTIONS]

DESCRIPTION
Lists the sources defined in the config file, with their root directory
and catalog database.

OPTIONS
--config, -c
Path to config file
Default is: ~/.config/phototree/config.json
Use "phototree help config" for more information on configuring phototree.

--log-level, -L <log-level>
Specify log output level
Default: info
Accepted values (in order of increasing amount of output) -
debug, info, warn, error, silent

--color <color-mode>
Specify output color mode.
Default: auto
Accepted values: auto, always, never
`

func PrintUsage() {
	L.Print(usageStr)
}
