package compare_cmd

import L "phototree/logger"

const usageStr string = `
USAGE
phototree compare [OPTIONS] SOURCE_A SOURCE_B

DESCRIPTION
Compares two scanned catalogs by content hash, so renamed or moved files
still match. Writes <output_dir>/compare_<A>_to_<B>.txt with two sections:
files whose content is only in A, and files whose content is only in B.
Files without a content hash never match anything.

The file can be edited and passed to 'phototree copyMissing'.

OPTIONS
--config, -c
Path to config file

--log-level, -L <log-level>
Accepted values: debug, info, warn, error, silent
`

func PrintUsage() {
	L.Print(usageStr)
}
