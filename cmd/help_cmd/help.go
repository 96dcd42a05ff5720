package help_cmd

import (
	"context"
	"fmt"

	"phototree/cmd/compare_cmd"
	"phototree/cmd/copymissing_cmd"
	"phototree/cmd/duplicates_cmd"
	"phototree/cmd/export_cmd"
	"phototree/cmd/plan_cmd"
	"phototree/cmd/scan_cmd"
	"phototree/cmd/sources_cmd"
	"phototree/cmd/tui_cmd"
)

func Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		PrintUsage()
		return nil
	}

	switch args[0] {
	case "sources":
		sources_cmd.PrintUsage()
	case "scan":
		scan_cmd.PrintUsage()
	case "findDuplicates":
		duplicates_cmd.PrintUsage()
	case "prepareExport":
		plan_cmd.PrintUsage()
	case "export":
		export_cmd.PrintUsage()
	case "compare":
		compare_cmd.PrintUsage()
	case "copyMissing":
		copymissing_cmd.PrintUsage()
	case "tui":
		tui_cmd.PrintUsage()
	case "help":
		PrintUsage()
	case "config":
		ConfigPrintUsage()
	default:
		return fmt.Errorf("No such command: %s", args[0])
	}
	return nil
}
