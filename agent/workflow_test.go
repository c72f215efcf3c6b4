package agent

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/shared"
)

// Requires a built server binary and a real chat API key.
func TestWorkflowRunQuery(t *testing.T) {
	cfg, err := shared.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.OpenAIAPIKey == "" {
		t.Skip("OPENAI_API_KEY not set")
	}
	serverBinary := "../bin/mcpserver"
	if _, err := os.Stat(serverBinary); err != nil {
		t.Skipf("server binary not built, run: go build -o bin/mcpserver ./cmds/mcpserver")
	}

	t.Run("test roll dice query", func(t *testing.T) {
		ctx := context.Background()
		var w Workflow
		if err := w.Init(ctx, cfg, serverBinary); err != nil {
			t.Fatalf("init workflow: %v", err)
		}
		defer w.Close()

		response, err := w.RunQuery(ctx, "Roll 3 six-sided dice")
		if err != nil {
			t.Fatalf("run query: %v", err)
		}
		fmt.Printf("response: %s\n", response)
		if response == "" {
			t.Error("expected a non-empty response")
		}
	})
}
