package scan_cmd

import L "phototree/logger"

const usageStr string = `
USAGE
phototree scan [OPTIONS] SOURCE

DESCRIPTION
Walks the root directory of SOURCE and stores one catalog record per file:
name, folder, extension, creation time, size, EXIF date taken and camera,
and a content hash when use_hash is enabled.
The catalog is cleared first, so the result reflects the tree as it is now.
Records are committed one directory at a time; an interrupted scan keeps
every directory printed before it stopped.

Each directory is printed followed by '.' for every image and '?' for
every other file.

OPTIONS
--keep
Do not clear the catalog before scanning. Rescanned files are stored twice.

--config, -c
Path to config file
Default is: ~/.config/phototree/config.json

--log-level, -L <log-level>
Specify log output level
Accepted values: debug, info, warn, error, silent

--color <color-mode>
Accepted values: auto, always, never

EXAMPLES
phototree scan photos
`

func PrintUsage() {
	L.Print(usageStr)
}
