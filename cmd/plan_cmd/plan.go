package plan_cmd

import (
	"context"
	"flag"
	"fmt"

	"phototree/cmd/cmd_env"
	"phototree/config"
	L "phototree/logger"
	"phototree/planner"
)

func Execute(ctx context.Context, args []string) error {
	planCmd := flag.NewFlagSet("prepareExport", flag.ExitOnError)
	common := cmd_env.RegisterCommonFlags(planCmd)
	dest := planCmd.String("dest", "", "Destination root written into the plan")
	planCmd.Usage = func() {
		PrintUsage()
	}
	err := planCmd.Parse(args)
	if err != nil {
		return err
	}
	err = cmd_env.ExactArgs("prepareExport", planCmd.Args(), 1, "SOURCE")
	if err != nil {
		return err
	}
	cfg, err := common.Apply(config.New())
	if err != nil {
		return err
	}

	catalog, err := cmd_env.OpenCatalog(ctx, cfg, planCmd.Arg(0))
	if err != nil {
		return err
	}
	defer catalog.Close(ctx)

	plan, err := planner.Plan(ctx, catalog.Repo, catalog.Source.Root)
	if err != nil {
		return err
	}
	if *dest != "" {
		plan.Dest, err = config.ExpandPath(*dest)
		if err != nil {
			return err
		}
	}
	planPath, err := cmd_env.OutputPath(cfg, fmt.Sprintf("exportPlan_%s.ini", catalog.Name))
	if err != nil {
		return err
	}
	err = planner.WritePlan(planPath, plan)
	if err != nil {
		return err
	}
	if len(plan.Excluded) > 0 {
		L.Warn(fmt.Sprintf("%d folders could not be written to the plan and will be reported as ignored on export, rename them to include them", len(plan.Excluded)))
	}
	L.Printf("Planned %d folders. Review %s, then run 'phototree export %s %s'\n",
		len(plan.Mappings), planPath, catalog.Name, planPath)
	return nil
}
