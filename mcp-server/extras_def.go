package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/service"
)

func noArgSchema() jsonschema.Definition {
	return jsonschema.Definition{
		Type:       jsonschema.Object,
		Properties: map[string]jsonschema.Definition{},
	}
}

func (s *Server) randomJokeTool() (openai.FunctionDefinition, server.ToolHandlerFunc) {
	def := openai.FunctionDefinition{
		Name:        "get_random_joke",
		Description: "Get a random joke",
		Parameters:  noArgSchema(),
	}
	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := s.extras.RandomJoke(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res), nil
	}
	return def, handler
}

func (s *Server) catFactTool() (openai.FunctionDefinition, server.ToolHandlerFunc) {
	def := openai.FunctionDefinition{
		Name:        "get_cat_fact",
		Description: "Get a random cat fact",
		Parameters:  noArgSchema(),
	}
	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := s.extras.CatFact(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res), nil
	}
	return def, handler
}

func (s *Server) randomQuoteTool() (openai.FunctionDefinition, server.ToolHandlerFunc) {
	def := openai.FunctionDefinition{
		Name:        "get_random_quote",
		Description: "Get a random inspirational quote",
		Parameters:  noArgSchema(),
	}
	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := s.extras.RandomQuote(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res), nil
	}
	return def, handler
}

type QRCodeArgs struct {
	Text string `json:"text"`
	Size string `json:"size"`
}

func (s *Server) qrCodeTool() (openai.FunctionDefinition, server.ToolHandlerFunc) {
	def := openai.FunctionDefinition{
		Name:        "generate_qr_code",
		Description: "Generate a QR code image link for the given text",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"text": {
					Type:        jsonschema.String,
					Description: "The text to encode in the QR code.",
				},
				"size": {
					Type:        jsonschema.String,
					Description: "Image size as WIDTHxHEIGHT, e.g. '300x300'. Defaults to 200x200.",
				},
			},
			Required: []string{"text"},
		},
	}
	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args QRCodeArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		url, err := service.QRCodeURL(args.Text, args.Size)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("QR code: " + url), nil
	}
	return def, handler
}
