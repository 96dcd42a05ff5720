package tui_cmd

import (
	"context"
	"flag"

	"phototree/cmd/cmd_env"
	"phototree/config"
	L "phototree/logger"
	"phototree/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func Execute(ctx context.Context, args []string) error {
	tuiCmd := flag.NewFlagSet("tui", flag.ExitOnError)
	common := cmd_env.RegisterCommonFlags(tuiCmd)
	tuiCmd.Usage = func() {
		PrintUsage()
	}
	err := tuiCmd.Parse(args)
	if err != nil {
		return err
	}
	err = cmd_env.ExactArgs("tui", tuiCmd.Args(), 1, "SOURCE")
	if err != nil {
		return err
	}
	cfg, err := common.Apply(config.New())
	if err != nil {
		return err
	}
	catalog, err := cmd_env.OpenCatalog(ctx, cfg, tuiCmd.Arg(0))
	if err != nil {
		return err
	}
	defer catalog.Close(ctx)

	// log lines would tear through the alt screen
	if L.GetLogLevel() < L.ERROR {
		_ = L.SetLevel(L.ERROR)
	}

	app := tui.NewApp(ctx, catalog.Repo, catalog.Name)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
