package version_cmd

import (
	"context"

	"phototree/cmd/cmd_env"
	L "phototree/logger"
)

// NOTE: populated at build time with -ldflags (-X)
var version string

// NOTE: populated at build time with -ldflags (-X)
var commitHash string

func Execute(ctx context.Context, args []string) error {
	name := cmd_env.BinaryName(ctx)
	L.Printf("%s version v%s, build %s\n", name, version, commitHash)
	return nil
}
