package components

import (
	"fmt"

	L "phototree/logger"
)

type CatalogStats struct {
	Source      string
	Records     int64
	Folders     int
	FolderFiles int
	FolderBytes uint64
}

func RenderStatusBar(
	stats CatalogStats,
	width int,
) string {
	if stats.Records == 0 {
		return DimStyle.Render(fmt.Sprintf("Catalog %s | empty", stats.Source))
	}
	line := fmt.Sprintf("Catalog %s | %d files in %d folders | folder: %d files, %s",
		stats.Source,
		stats.Records,
		stats.Folders,
		stats.FolderFiles,
		L.HumanReadableBytes(stats.FolderBytes),
	)
	return GreenStyle.Render(L.TruncateString(line, width, L.TRUNC_RIGHT))
}
