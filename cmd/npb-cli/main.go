package main

import (
	"context"

	"github.com/albertinopadin/baseball-mcp/cmd/npb-cli/commands"
	"github.com/albertinopadin/baseball-mcp/lib/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.SetupFromEnv(ctx, "npb-cli")
	telemetry.InitSlog(false)
	commands.ExecuteContext(ctx)
}
