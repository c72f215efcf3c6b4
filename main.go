package main

import (
	"context"
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/agent"
	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/shared"
)

func main() {
	server := flag.String("server", "bin/mcpserver", "path to the MCP tool server binary")
	interactive := flag.Bool("i", false, "interactive mode instead of the scripted demo")
	flag.Parse()

	cfg, err := shared.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("load config failed")
		return
	}

	ctx := context.Background()
	var w agent.Workflow
	if err := w.Init(ctx, cfg, *server); err != nil {
		log.Error().Err(err).Msg("init workflow failed")
		return
	}
	defer w.Close()

	if *interactive {
		err = w.Interactive(ctx)
	} else {
		err = w.RunDemo(ctx)
	}
	if err != nil {
		log.Error().Err(err).Msg("run workflow failed")
	}
}
