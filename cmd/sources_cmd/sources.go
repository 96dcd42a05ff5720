package sources_cmd

import (
	"context"
	"flag"

	"phototree/cmd/cmd_env"
	"phototree/config"
	L "phototree/logger"
)

func Execute(ctx context.Context, args []string) error {
	sourcesCmd := flag.NewFlagSet("sources", flag.ExitOnError)
	common := cmd_env.RegisterCommonFlags(sourcesCmd)
	sourcesCmd.Usage = func() {
		PrintUsage()
	}
	err := sourcesCmd.Parse(args)
	if err != nil {
		return err
	}
	err = cmd_env.ExactArgs("sources", sourcesCmd.Args(), 0, "")
	if err != nil {
		return err
	}
	cfg, err := common.Apply(config.New())
	if err != nil {
		return err
	}

	names := cfg.SourceNames()
	if len(names) == 0 {
		L.Printf("No sources configured in %s\n", config.GetConfigPath())
		return nil
	}
	L.Printf("Available sources:\n")
	for _, name := range names {
		src := cfg.Sources[name]
		L.Printf("  %s\n    root: %s\n    db:   %s\n", name, src.Root, src.DB)
	}
	return nil
}
