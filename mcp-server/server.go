package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/service"
	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/shared"
)

const (
	ServerName    = "mcp-server"
	ServerVersion = "1.0.0"
)

// Server exposes the tool set (web search, dice, weather, extras) over the
// MCP stdio transport.
type Server struct {
	mcp     *server.MCPServer
	search  *service.SearchClient
	weather *service.WeatherClient
	extras  *service.ExtrasClient
}

func NewServer(cfg *shared.Config) (*Server, error) {
	s := &Server{
		search:  service.NewSearchClient(cfg.TavilyAPIKey),
		weather: service.NewWeatherClient(cfg.OpenWeatherAPIKey),
		extras:  service.NewExtrasClient(),
	}

	m := server.NewMCPServer(ServerName, ServerVersion, server.WithToolCapabilities(true))
	tools := []func() (openai.FunctionDefinition, server.ToolHandlerFunc){
		s.webSearchTool,
		s.rollDiceTool,
		s.weatherTool,
		s.weatherByCityTool,
		s.randomJokeTool,
		s.catFactTool,
		s.randomQuoteTool,
		s.qrCodeTool,
	}
	for _, toolFunc := range tools {
		def, handler := toolFunc()
		tool, err := shared.ConvertToMcpTool(def)
		if err != nil {
			return nil, fmt.Errorf("register tool %s: %w", def.Name, err)
		}
		m.AddTool(tool, handler)
	}
	s.mcp = m
	return s, nil
}

// Run serves MCP requests over stdin/stdout until the client disconnects.
func (s *Server) Run() error {
	log.Info().Str("server", ServerName).Msg("serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}
