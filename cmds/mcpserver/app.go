package main

import (
	"github.com/rs/zerolog/log"

	mcpserver "github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/mcp-server"
	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/shared"
)

func main() {
	cfg, err := shared.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("load config failed")
		return
	}
	s, err := mcpserver.NewServer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("create server failed")
		return
	}
	if err := s.Run(); err != nil {
		log.Error().Err(err).Msg("run server failed")
	}
}
