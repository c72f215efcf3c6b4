package mcpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/service"
	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/shared"
)

// ClientMgr owns stdio connections to MCP servers, keyed by the server name
// reported during initialization.
type ClientMgr struct {
	clientMap map[string]*client.Client
}

func NewClientMgr() *ClientMgr {
	return &ClientMgr{
		clientMap: map[string]*client.Client{},
	}
}

func (mgr *ClientMgr) CloseByName(name string) error {
	c, exist := mgr.clientMap[name]
	if !exist {
		return fmt.Errorf("client %s not exist", name)
	}
	if err := c.Close(); err != nil {
		return err
	}
	delete(mgr.clientMap, name)
	return nil
}

func (mgr *ClientMgr) Close() error {
	var errList []error
	for _, c := range mgr.clientMap {
		if err := c.Close(); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// NewMCPClient spawns an MCP server over stdio and registers it under the
// name it reports.
func (mgr *ClientMgr) NewMCPClient(ctx context.Context, command string, env []string, args ...string) error {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return err
	}
	res, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			ClientInfo: mcp.Implementation{
				Name:    "mcp-demo-client",
				Version: "1.0.0",
			},
			Capabilities: mcp.ClientCapabilities{},
		},
	})
	if err != nil {
		closeErr := c.Close()
		return errors.Join(err, closeErr)
	}
	if _, exist := mgr.clientMap[res.ServerInfo.Name]; exist {
		closeErr := c.Close()
		return errors.Join(fmt.Errorf("mcp server %s already exist", res.ServerInfo.Name), closeErr)
	}
	mgr.clientMap[res.ServerInfo.Name] = c
	return nil
}

// LoadAllTools lists tools from every connected server and wraps them as
// dispatcher endpoints whose handlers call back over MCP.
func (mgr *ClientMgr) LoadAllTools(ctx context.Context) ([]service.ToolEndPoint, error) {
	var endpoints []service.ToolEndPoint
	var errList []error
	for _, c := range mgr.clientMap {
		res, err := mgr.loadTools(ctx, c)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		endpoints = append(endpoints, res...)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return endpoints, nil
}

func (mgr *ClientMgr) loadTools(ctx context.Context, c *client.Client) ([]service.ToolEndPoint, error) {
	res, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, err
	}
	endpointList := make([]service.ToolEndPoint, 0, len(res.Tools))
	for _, tool := range res.Tools {
		endpointList = append(endpointList, service.ToolEndPoint{
			Name:    tool.Name,
			Def:     shared.ConvertToFunctionDefinition(tool),
			Handler: callToolHandler(ctx, c, tool.Name),
		})
	}
	return endpointList, nil
}

func callToolHandler(ctx context.Context, c *client.Client, toolName string) func(args string) (string, error) {
	return func(args string) (string, error) {
		// Model tool calls arrive as a raw JSON string, MCP wants an object.
		argMap := map[string]any{}
		if strings.TrimSpace(args) != "" {
			if err := json.Unmarshal([]byte(args), &argMap); err != nil {
				return "", fmt.Errorf("tool %s arguments are not a JSON object: %w", toolName, err)
			}
		}
		res, err := c.CallTool(ctx, mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      toolName,
				Arguments: argMap,
			},
		})
		if err != nil {
			return "", err
		}
		var builder strings.Builder
		for _, content := range res.Content {
			if text, ok := content.(mcp.TextContent); ok {
				builder.WriteString(text.Text)
				builder.WriteByte('\n')
			}
		}
		return builder.String(), nil
	}
}
