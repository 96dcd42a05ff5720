package plan_cmd

import L "phototree/logger"

const usageStr string = `
USAGE
phototree prepareExport [OPTIONS] SOURCE

DESCRIPTION
Computes a destination folder for every folder of the SOURCE catalog and
writes the mapping to <output_dir>/exportPlan_<SOURCE>.ini for review.
Nothing is copied. Edit the plan, then apply it with 'phototree export'.

For each folder:
1. the top folder is prefixed with the year of its earliest photo,
   unless it already starts with digits followed by '-' or '_'
2. deeper nesting collapses to top/last
3. spaces become underscores

Example: 'Summer' (photos from 2019) becomes '2019_Summer',
'2020_Trip/Day1' stays '2020_Trip/Day1', 'A/B/C' becomes 'A/C'.

OPTIONS
--dest <path>
Destination root to write into the plan. When omitted the plan says
'dest = None' and has to be edited, or passed to export with --dest.

--config, -c
Path to config file

--log-level, -L <log-level>
Accepted values: debug, info, warn, error, silent
`

func PrintUsage() {
	L.Print(usageStr)
}
