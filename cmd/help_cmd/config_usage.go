package help_cmd

import (
	"fmt"
	"strings"

	"phototree/config"
	L "phototree/logger"
)

const configUsageStr string = `
CONFIGURATION
    The configuration file lists the photo sources phototree knows about and
    the preferences used while scanning and exporting. JSON and YAML files are
    accepted; the format follows the file extension.

    When you first run the program, a default config will be created for you at
    '~/.config/phototree/config.json'. Use --config to point at another file.

SAMPLE CONFIG
%s
OPTIONS
    sources
        Map of source name to its settings. Names are case-insensitive.

    sources.<name>.root
        Directory to scan. '~' is expanded.

    sources.<name>.db
        sqlite catalog file. Default: <root>/catalog.db
        The catalog file is never indexed even when it lives under root.

    image_extensions
        Extensions treated as images: EXIF is read for them and only they
        are copied by export. Default: [".jpg", ".jpeg"]

    use_hash
        Compute a content hash for every file. Duplicate detection and
        compare need it. Default: true

    hash_algorithm
        Supported values: md5, sha256, xxhash. Default: md5

    output_dir
        Where reports and export plans are written. Default: output

    continue_on_error
        Keep copying after a failed copy during export and copyMissing.
        Default: false

    ignore_extensions
        Extensions copyMissing never copies. Default: [".ini", ".db"]

`

func ConfigUsage() string {
	return fmt.Sprintf(configUsageStr, indent(config.DumpDefaultConfig(), "        "))
}

func ConfigPrintUsage() {
	L.Print(ConfigUsage())
}

func indent(s string, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n") + "\n"
}
