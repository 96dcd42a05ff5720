package copymissing_cmd

import (
	"context"
	"flag"
	"fmt"

	"phototree/cmd/cmd_env"
	"phototree/config"
	"phototree/exporter"
	"phototree/file_io"
	L "phototree/logger"
	"phototree/report"
)

func Execute(ctx context.Context, args []string) error {
	copyCmd := flag.NewFlagSet("copyMissing", flag.ExitOnError)
	common := cmd_env.RegisterCommonFlags(copyCmd)
	continueOnError := copyCmd.Bool("continue-on-error", false, "Record failed copies and keep going")
	copyCmd.Usage = func() {
		PrintUsage()
	}
	err := copyCmd.Parse(args)
	if err != nil {
		return err
	}
	err = cmd_env.ExactArgs("copyMissing", copyCmd.Args(), 3, "SOURCE, LIST and DEST")
	if err != nil {
		return err
	}
	cfg, err := common.Apply(config.New())
	if err != nil {
		return err
	}
	destRoot, err := config.ExpandPath(copyCmd.Arg(2))
	if err != nil {
		return err
	}

	catalog, err := cmd_env.OpenCatalog(ctx, cfg, copyCmd.Arg(0))
	if err != nil {
		return err
	}
	defer catalog.Close(ctx)

	reportPath, err := cmd_env.OutputPath(cfg, fmt.Sprintf("copyMissing_%s.txt", catalog.Name))
	if err != nil {
		return err
	}
	rep, err := report.Create(reportPath)
	if err != nil {
		return err
	}
	defer rep.Close()

	e := exporter.New(catalog.Repo, file_io.New(), exporter.Options{
		ImageExtensions:  cfg.ImageExtensions,
		IgnoreExtensions: cfg.IgnoreExtensions,
		ContinueOnError:  cfg.ContinueOnError || *continueOnError,
	})
	result, err := e.CopyListed(ctx, copyCmd.Arg(1), catalog.Source.Root, destRoot, rep)
	if err != nil {
		return err
	}
	L.Printf("Copied %d files (%s), already present %d, failed %d. Report: %s\n",
		result.Copied, L.HumanReadableBytes(uint64(result.BytesCopied)), result.Skipped, result.Failed, reportPath)
	return result.Err
}
