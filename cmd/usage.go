package cmd

import L "phototree/logger"

var usageStr string = `
USAGE
phototree [-v | -version] [-h | -help] <command> [<args>]

DESCRIPTION
phototree catalogs photo collections into a local sqlite index, finds
duplicates, compares collections and reorganizes them into year-prefixed
folders.

COMMANDS
These are common phototree commands used in various situations -
help            Help about a subcommand
sources         Lists the configured sources
scan            Indexes every file under the root of a source
findDuplicates  Reports files sharing the same content
prepareExport   Writes a reviewable folder mapping for a source
export          Copies images according to an export plan
compare         Reports content present in only one of two sources
copyMissing     Copies the files listed in a compare report
tui             Interactive terminal user interface
version         Prints version

EXAMPLES
See 'phototree help <command>' to read about a specific subcommand.

SEE ALSO
1. phototree help scan
2. phototree help config
`

func Usage() string {
	return usageStr
}

func PrintUsage() {
	L.Print(usageStr)
}
