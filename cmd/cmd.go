package cmd

import (
	"context"

	"phototree/cmd/cmd_env"
	"phototree/cmd/compare_cmd"
	"phototree/cmd/copymissing_cmd"
	"phototree/cmd/duplicates_cmd"
	"phototree/cmd/export_cmd"
	"phototree/cmd/help_cmd"
	"phototree/cmd/plan_cmd"
	"phototree/cmd/scan_cmd"
	"phototree/cmd/sources_cmd"
	"phototree/cmd/tui_cmd"
	"phototree/cmd/version_cmd"
)

func Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		PrintUsage()
		return nil
	}

	values := map[string]string{
		"binary_name":  args[0],
		"command_name": args[1],
	}

	ctx = context.WithValue(ctx, cmd_env.ValuesKey, values)

	switch args[1] {
	case "sources":
		return sources_cmd.Execute(ctx, args[2:])
	case "scan":
		return scan_cmd.Execute(ctx, args[2:])
	case "findDuplicates":
		return duplicates_cmd.Execute(ctx, args[2:])
	case "prepareExport":
		return plan_cmd.Execute(ctx, args[2:])
	case "export":
		return export_cmd.Execute(ctx, args[2:])
	case "compare":
		return compare_cmd.Execute(ctx, args[2:])
	case "copyMissing":
		return copymissing_cmd.Execute(ctx, args[2:])
	case "tui":
		return tui_cmd.Execute(ctx, args[2:])
	case "help", "--help", "-h":
		return help_cmd.Execute(ctx, args[2:])
	case "version", "--version", "-v":
		return version_cmd.Execute(ctx, args[2:])
	default:
		PrintUsage()
		return nil
	}
}
