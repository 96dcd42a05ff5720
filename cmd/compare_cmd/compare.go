package compare_cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"phototree/cmd/cmd_env"
	"phototree/config"
	"phototree/database/model"
	"phototree/dedup"
	L "phototree/logger"
)

func Execute(ctx context.Context, args []string) error {
	compareCmd := flag.NewFlagSet("compare", flag.ExitOnError)
	common := cmd_env.RegisterCommonFlags(compareCmd)
	compareCmd.Usage = func() {
		PrintUsage()
	}
	err := compareCmd.Parse(args)
	if err != nil {
		return err
	}
	err = cmd_env.ExactArgs("compare", compareCmd.Args(), 2, "two SOURCEs")
	if err != nil {
		return err
	}
	cfg, err := common.Apply(config.New())
	if err != nil {
		return err
	}

	// source names are case-insensitive, reports use the lower-case form
	nameA, nameB := strings.ToLower(compareCmd.Arg(0)), strings.ToLower(compareCmd.Arg(1))
	L.Printf("Comparing %s to %s\n", nameA, nameB)
	a, err := loadIndex(ctx, cfg, nameA)
	if err != nil {
		return err
	}
	b, err := loadIndex(ctx, cfg, nameB)
	if err != nil {
		return err
	}

	result := dedup.Compare(a, b)
	L.Debug(fmt.Sprintf("a_not_in_b: %d files", len(result.OnlyInA)))
	L.Debug(fmt.Sprintf("b_not_in_a: %d files", len(result.OnlyInB)))
	reportPath, err := cmd_env.OutputPath(cfg, fmt.Sprintf("compare_%s_to_%s.txt", nameA, nameB))
	if err != nil {
		return err
	}
	return dedup.WriteCompareReport(reportPath, nameA, nameB, result)
}

// each catalog is read and closed before the next one is opened
func loadIndex(ctx context.Context, cfg *config.Config, name string) (*model.HashIndex, error) {
	catalog, err := cmd_env.OpenCatalog(ctx, cfg, name)
	if err != nil {
		return nil, err
	}
	defer catalog.Close(ctx)
	index, err := catalog.Repo.AllRecords(ctx)
	if err != nil {
		return nil, err
	}
	if len(index.Unhashed) > 0 {
		L.Warn(fmt.Sprintf("%d files of %s have no content hash and are compared as unique", len(index.Unhashed), name))
	}
	return index, nil
}
