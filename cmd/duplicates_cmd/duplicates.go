package duplicates_cmd

import (
	"context"
	"flag"
	"fmt"

	"phototree/cmd/cmd_env"
	"phototree/config"
	"phototree/dedup"
	L "phototree/logger"
)

func Execute(ctx context.Context, args []string) error {
	duplicatesCmd := flag.NewFlagSet("findDuplicates", flag.ExitOnError)
	common := cmd_env.RegisterCommonFlags(duplicatesCmd)
	duplicatesCmd.Usage = func() {
		PrintUsage()
	}
	err := duplicatesCmd.Parse(args)
	if err != nil {
		return err
	}
	err = cmd_env.ExactArgs("findDuplicates", duplicatesCmd.Args(), 1, "SOURCE")
	if err != nil {
		return err
	}
	cfg, err := common.Apply(config.New())
	if err != nil {
		return err
	}

	catalog, err := cmd_env.OpenCatalog(ctx, cfg, duplicatesCmd.Arg(0))
	if err != nil {
		return err
	}
	defer catalog.Close(ctx)

	if !cfg.UseHash {
		L.Warn("use_hash is disabled, duplicates can only be found among files scanned with hashing")
	}
	groups, err := dedup.FindDuplicates(ctx, catalog.Repo)
	if err != nil {
		return err
	}
	reportPath, err := cmd_env.OutputPath(cfg, fmt.Sprintf("duplicates_%s.txt", catalog.Name))
	if err != nil {
		return err
	}
	err = dedup.WriteDuplicatesReport(reportPath, groups)
	if err != nil {
		return err
	}
	L.Printf("%d duplicate groups, %s could be reclaimed. See %s\n",
		len(groups), L.HumanReadableBytes(dedup.WastedBytes(groups)), reportPath)
	return nil
}
