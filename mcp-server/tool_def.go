package mcpserver

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/dice"
)

type WebSearchArgs struct {
	Query string `json:"query"`
}

type RollDiceArgs struct {
	Notation string `json:"notation"`
	NumRolls int    `json:"num_rolls"`
}

const maxNumRolls = 20

func (s *Server) webSearchTool() (openai.FunctionDefinition, server.ToolHandlerFunc) {
	def := openai.FunctionDefinition{
		Name:        "web_search",
		Description: "Search the web for information about the given query",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"query": {
					Type:        jsonschema.String,
					Description: "The search query to look up.",
				},
			},
			Required: []string{"query"},
		},
	}
	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args WebSearchArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := s.search.Search(ctx, args.Query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res), nil
	}
	return def, handler
}

func (s *Server) rollDiceTool() (openai.FunctionDefinition, server.ToolHandlerFunc) {
	def := openai.FunctionDefinition{
		Name:        "roll_dice",
		Description: "Roll the dice with the given notation, e.g. '3d6' for three six-sided dice or '2d20k1' for two d20 keeping the highest.",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"notation": {
					Type:        jsonschema.String,
					Description: "Dice notation of the form <count>d<sides> with an optional k<keep> suffix.",
				},
				"num_rolls": {
					Type:        jsonschema.Integer,
					Description: "Number of times to repeat the roll, between 1 and 20. Defaults to 1.",
				},
			},
			Required: []string{"notation"},
		},
	}
	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args RollDiceArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if args.NumRolls == 0 {
			args.NumRolls = 1
		}
		if args.NumRolls < 1 || args.NumRolls > maxNumRolls {
			return mcp.NewToolResultError("num_rolls must be between 1 and 20"), nil
		}

		expr, err := dice.Parse(args.Notation)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		lines := make([]string, args.NumRolls)
		for i := range lines {
			lines[i] = expr.Roll().String()
		}
		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	}
	return def, handler
}

func (s *Server) weatherTool() (openai.FunctionDefinition, server.ToolHandlerFunc) {
	def := openai.FunctionDefinition{
		Name:        "get_weather",
		Description: "Get weather data for a coordinate pair using the OpenWeather One Call API 3.0",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"lat": {
					Type:        jsonschema.Number,
					Description: "Latitude, decimal (-90; 90)",
				},
				"lon": {
					Type:        jsonschema.Number,
					Description: "Longitude, decimal (-180; 180)",
				},
			},
			Required: []string{"lat", "lon"},
		},
	}
	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lat, err := request.RequireFloat("lat")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		lon, err := request.RequireFloat("lon")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := s.weather.OneCall(ctx, lat, lon)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res), nil
	}
	return def, handler
}

func (s *Server) weatherByCityTool() (openai.FunctionDefinition, server.ToolHandlerFunc) {
	def := openai.FunctionDefinition{
		Name:        "get_weather_by_city",
		Description: "Get current weather for a city name",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"city": {
					Type:        jsonschema.String,
					Description: "City name to get weather for, e.g. 'San Francisco'",
				},
				"units": {
					Type:        jsonschema.String,
					Description: "Temperature units",
					Enum:        []string{"metric", "imperial", "kelvin"},
				},
			},
			Required: []string{"city"},
		},
	}
	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		city, err := request.RequireString("city")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		units := request.GetString("units", "metric")
		res, err := s.weather.CurrentByCity(ctx, city, units)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res), nil
	}
	return def, handler
}
