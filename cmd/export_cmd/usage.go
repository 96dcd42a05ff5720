package export_cmd

import L "phototree/logger"

const usageStr string = `
USAGE
phototree export [OPTIONS] SOURCE PLAN

DESCRIPTION
Applies an export plan written by 'phototree prepareExport'. For every
'source->dest' line the destination folder is created and every image of
the source folder is copied into it. Files already present at the
destination are skipped, so an export can be run again safely.
Catalog folders missing from the plan are listed as ignored.

Every decision is written to <output_dir>/export_<SOURCE>.txt.
By default the first failed copy stops the export; the report shows
what was done up to that point.

OPTIONS
--dest <path>
Destination root, overrides 'dest' in the plan.

--continue-on-error
Record failed copies in the report and continue with the next file.
Same as 'continue_on_error: true' in the config file.

--config, -c
Path to config file

--log-level, -L <log-level>
Accepted values: debug, info, warn, error, silent
`

func PrintUsage() {
	L.Print(usageStr)
}
