package shared

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sashabaranov/go-openai"
)

// ConvertToMcpTool turns an OpenAI function definition into an MCP tool by
// reusing the function's JSON schema as the tool input schema.
func ConvertToMcpTool(def openai.FunctionDefinition) (mcp.Tool, error) {
	data, err := json.Marshal(def.Parameters)
	if err != nil {
		return mcp.Tool{}, err
	}

	tool := mcp.NewToolWithRawSchema(def.Name, def.Description, data)
	return tool, nil
}

// ConvertToFunctionDefinition is the reverse direction, used by the client
// side to present MCP tools to an OpenAI-compatible chat API.
func ConvertToFunctionDefinition(tool mcp.Tool) openai.FunctionDefinition {
	def := openai.FunctionDefinition{
		Name:        tool.Name,
		Description: tool.Description,
	}
	if len(tool.RawInputSchema) > 0 {
		def.Parameters = tool.RawInputSchema
	} else if data, err := json.Marshal(tool.InputSchema); err == nil {
		def.Parameters = json.RawMessage(data)
	}
	return def
}
