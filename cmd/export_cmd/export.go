package export_cmd

import (
	"context"
	"flag"
	"fmt"

	"phototree/cmd/cmd_env"
	"phototree/config"
	"phototree/exporter"
	"phototree/file_io"
	L "phototree/logger"
	"phototree/planner"
	"phototree/report"
)

func Execute(ctx context.Context, args []string) error {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	common := cmd_env.RegisterCommonFlags(exportCmd)
	dest := exportCmd.String("dest", "", "Destination root, overrides dest of the plan")
	continueOnError := exportCmd.Bool("continue-on-error", false, "Record failed copies and keep going")
	exportCmd.Usage = func() {
		PrintUsage()
	}
	err := exportCmd.Parse(args)
	if err != nil {
		return err
	}
	err = cmd_env.ExactArgs("export", exportCmd.Args(), 2, "SOURCE and PLAN")
	if err != nil {
		return err
	}
	cfg, err := common.Apply(config.New())
	if err != nil {
		return err
	}

	// the plan is checked before anything is opened for writing
	plan, err := planner.ReadPlan(exportCmd.Arg(1))
	if err != nil {
		return err
	}
	if *dest != "" {
		plan.Dest, err = config.ExpandPath(*dest)
		if err != nil {
			return err
		}
	}
	catalog, err := cmd_env.OpenCatalog(ctx, cfg, exportCmd.Arg(0))
	if err != nil {
		return err
	}
	defer catalog.Close(ctx)
	if plan.Root == "" {
		plan.Root = catalog.Source.Root
	}
	if plan.Root != catalog.Source.Root {
		L.Warn(fmt.Sprintf("plan root %s differs from the root of %s (%s), using the plan", plan.Root, catalog.Name, catalog.Source.Root))
	}
	err = planner.Validate(plan)
	if err != nil {
		return err
	}
	if file_io.IsDir(plan.Dest) {
		_, err = file_io.IsWritable(plan.Dest)
		if err != nil {
			return fmt.Errorf("destination %s is not writable: %w", plan.Dest, err)
		}
	}

	reportPath, err := cmd_env.OutputPath(cfg, fmt.Sprintf("export_%s.txt", catalog.Name))
	if err != nil {
		return err
	}
	rep, err := report.Create(reportPath)
	if err != nil {
		return err
	}
	defer rep.Close()

	e := exporter.New(catalog.Repo, file_io.New(), exporter.Options{
		ImageExtensions: cfg.ImageExtensions,
		ContinueOnError: cfg.ContinueOnError || *continueOnError,
	})
	result, err := e.Apply(ctx, plan, rep)
	if err != nil {
		return err
	}
	L.Printf("Copied %d files (%s), skipped %d, failed %d. Report: %s\n",
		result.Copied, L.HumanReadableBytes(uint64(result.BytesCopied)), result.Skipped, result.Failed, reportPath)
	return result.Err
}
