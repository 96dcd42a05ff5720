package help_cmd

import L "phototree/logger"

var usageStr string = `
USAGE
    phototree help <command>

DESCRIPTION
    Prints usage information for a specified subcommand.

COMMANDS
    help            Help about a subcommand
    config          Help about the config file
    sources         Lists the configured sources
    scan            Indexes every file under the root of a source
    findDuplicates  Reports files sharing the same content
    prepareExport   Writes a reviewable folder mapping for a source
    export          Copies images according to an export plan
    compare         Reports content present in only one of two sources
    copyMissing     Copies the files listed in a compare report
    tui             Interactive terminal user interface

EXAMPLES
    See 'phototree help <command>' to read about a specific subcommand.
`

func Usage() string {
	return usageStr
}

func PrintUsage() {
	L.Print(usageStr)
}
