package agent

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	mcpclient "github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/mcp-client"
	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/service"
	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/shared"
)

var assistantInstruct = `
You are a helpful assistant with access to tools for web search, dice rolling, weather lookups and a few fun extras.
Use a tool whenever it can answer the user's request, then summarize the result in plain language.
When a tool fails, report the failure briefly instead of guessing.
`

// DemoQueries exercises each tool once without user interaction.
var DemoQueries = []string{
	"Roll 3 six-sided dice",
	"What's the weather like in San Francisco?",
	"Search for information about Model Context Protocol",
	"Roll 2d20k1 and explain what that means",
	"Get weather in London using Celsius",
}

// Workflow wires the chat client to the MCP tool server and drives the demo.
type Workflow struct {
	cfg       *shared.Config
	mcpclient *mcpclient.ClientMgr
	client    *openai.Client
}

func (w *Workflow) Close() error {
	return w.mcpclient.Close()
}

// Init builds the chat client from config and spawns the MCP tool server.
func (w *Workflow) Init(ctx context.Context, cfg *shared.Config, serverCommand string, serverArgs ...string) error {
	if cfg.OpenAIAPIKey == "" {
		return fmt.Errorf("api key OPENAI_API_KEY not set")
	}
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	w.cfg = cfg
	w.client = openai.NewClientWithConfig(clientConfig)

	w.mcpclient = mcpclient.NewClientMgr()
	if err := w.mcpclient.NewMCPClient(ctx, serverCommand, nil, serverArgs...); err != nil {
		return fmt.Errorf("connect mcp server: %w", err)
	}
	log.Info().Str("server", serverCommand).Msg("create mcp client success")
	return nil
}

// RunQuery answers a single user input through the agent loop.
func (w *Workflow) RunQuery(ctx context.Context, input string) (string, error) {
	tools := service.NewToolDispatcher()
	endpoints, err := w.mcpclient.LoadAllTools(ctx)
	if err != nil {
		return "", fmt.Errorf("load mcp tools: %w", err)
	}
	if err := tools.RegisterToolEndpoint(endpoints...); err != nil {
		return "", err
	}

	ag := NewBaseAgent(assistantInstruct, input, tools)

	var final string
	outputFunc := func(msg openai.ChatCompletionMessage) bool {
		if len(msg.ToolCalls) == 0 {
			final = msg.Content
			return true
		}
		return false
	}
	if err := ag.Run(ctx, w.client, w.cfg.Model, outputFunc); err != nil {
		return "", err
	}
	return final, nil
}

// RunDemo walks through the scripted demo queries.
func (w *Workflow) RunDemo(ctx context.Context) error {
	for i, query := range DemoQueries {
		fmt.Printf("\nDemo query %d: %s\n", i+1, query)
		response, err := w.RunQuery(ctx, query)
		if err != nil {
			log.Error().Err(err).Str("query", query).Msg("query failed")
			continue
		}
		fmt.Printf("Assistant: %s\n", response)
	}
	return nil
}

// Interactive reads queries from stdin until the user quits.
func (w *Workflow) Interactive(ctx context.Context) error {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" || input == "q" {
			return nil
		}

		response, err := w.RunQuery(ctx, input)
		if err != nil {
			log.Error().Err(err).Msg("query failed")
			continue
		}
		fmt.Printf("Assistant: %s\n", response)
	}
}
