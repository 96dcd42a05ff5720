package scan_cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"phototree/cmd/cmd_env"
	"phototree/config"
	"phototree/file_io"
	"phototree/fingerprint"
	L "phototree/logger"
	"phototree/scanner"
)

type ScanCmdEnv struct {
	SourceName string
	Keep       bool
	Config     *config.Config
}

func Execute(ctx context.Context, args []string) error {
	env, err := parseFlags(args)
	if err != nil {
		return err
	}

	catalog, err := cmd_env.OpenCatalog(ctx, env.Config, env.SourceName)
	if err != nil {
		return err
	}
	defer catalog.Close(ctx)

	// an unmounted drive must not wipe the existing catalog
	if !file_io.IsDir(catalog.Source.Root) || !file_io.IsReadable(catalog.Source.Root) {
		return fmt.Errorf("root of %s is not a readable directory: %s", env.SourceName, catalog.Source.Root)
	}

	if !env.Keep {
		L.Info("resetting database")
		err = catalog.Repo.Reset(ctx)
		if err != nil {
			return err
		}
	}

	s := scanner.New(
		catalog.Repo,
		fingerprint.New(cmd_env.FingerprintOptions(env.Config)),
		scanner.Options{CatalogPath: catalog.Source.DB},
	)
	start := time.Now()
	summary, err := s.Scan(ctx, catalog.Source.Root)
	if summary != nil {
		L.Info(fmt.Sprintf("Scanned %d directories, %d files (%d images, %s) in %s",
			summary.Directories,
			summary.Files,
			summary.Images,
			L.HumanReadableBytes(summary.Bytes),
			L.HumanReadableTime(time.Since(start).Milliseconds()),
		))
	}
	if err != nil {
		return fmt.Errorf("scan of %s stopped, directories listed above are stored: %w", env.SourceName, err)
	}
	return nil
}

func parseFlags(args []string) (*ScanCmdEnv, error) {
	scanCmd := flag.NewFlagSet("scan", flag.ExitOnError)
	common := cmd_env.RegisterCommonFlags(scanCmd)
	keep := scanCmd.Bool("keep", false, "Do not reset the catalog before scanning")
	scanCmd.Usage = func() {
		PrintUsage()
	}
	err := scanCmd.Parse(args)
	if err != nil {
		return nil, err
	}
	err = cmd_env.ExactArgs("scan", scanCmd.Args(), 1, "SOURCE")
	if err != nil {
		return nil, err
	}
	cfg, err := common.Apply(config.New())
	if err != nil {
		return nil, err
	}
	return &ScanCmdEnv{
		SourceName: scanCmd.Arg(0),
		Keep:       *keep,
		Config:     cfg,
	}, nil
}
