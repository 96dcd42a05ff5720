package copymissing_cmd

import L "phototree/logger"

const usageStr string = `
USAGE
phototree copyMissing [OPTIONS] SOURCE LIST DEST

DESCRIPTION
Copies every file listed in LIST from the root of SOURCE into DEST, keeping
the folder structure. LIST holds one path per line relative to the root,
e.g. an edited report of 'phototree compare'. Lines starting with '#' are
skipped, as are files whose extension is in ignore_extensions
(default: .ini, .db). Files already present in DEST are not overwritten.

The report is written to <output_dir>/copyMissing_<SOURCE>.txt.

OPTIONS
--continue-on-error
Record failed copies in the report and continue with the next file.

--config, -c
Path to config file

--log-level, -L <log-level>
Accepted values: debug, info, warn, error, silent

EXAMPLES
phototree compare photos usb
phototree copyMissing photos output/compare_photos_to_usb.txt /media/usb/Photo_missing
`

func PrintUsage() {
	L.Print(usageStr)
}
