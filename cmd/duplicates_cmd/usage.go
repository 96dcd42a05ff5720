package duplicates_cmd

import L "phototree/logger"

const usageStr string = `
USAGE
phototree findDuplicates [OPTIONS] SOURCE

DESCRIPTION
Groups the files of the SOURCE catalog that share a content hash and writes
them to <output_dir>/duplicates_<SOURCE>.txt, largest files first.
Each group starts with the file name and its size, followed by one path
per line. Run 'phototree scan SOURCE' first.

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
