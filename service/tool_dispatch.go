package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// ToolEndPoint pairs an OpenAI function definition with the handler that
// executes it. Handlers receive the raw JSON argument string from the model.
type ToolEndPoint struct {
	Name    string
	Def     openai.FunctionDefinition
	Handler func(args string) (string, error)
}

// ToolExecLog records one tool invocation for the agent transcript.
type ToolExecLog struct {
	ID   int
	Name string
	Args string
	Res  string
	Err  error
}

func (l *ToolExecLog) formatString() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("TOOL_LOG_ID: %d\n", l.ID))
	if l.Err != nil {
		builder.WriteString(fmt.Sprintf("Execute tool call failed, error: %s\n", l.Err))
	} else {
		builder.WriteString("Execute tool call success\n")
		builder.WriteString(l.Res)
	}
	return builder.String()
}

// ToolDispatcher routes model tool calls to registered endpoints and keeps
// an execution log.
type ToolDispatcher struct {
	toolMap map[string]ToolEndPoint
	toolLog []*ToolExecLog
}

func NewToolDispatcher() *ToolDispatcher {
	return &ToolDispatcher{
		toolMap: map[string]ToolEndPoint{},
	}
}

func (td *ToolDispatcher) RegisterToolEndpoint(endpoints ...ToolEndPoint) error {
	var errList []error
	for _, endpoint := range endpoints {
		if _, exist := td.toolMap[endpoint.Name]; exist {
			errList = append(errList, fmt.Errorf("tool with name %s already exist", endpoint.Name))
			continue
		}
		td.toolMap[endpoint.Name] = endpoint
	}
	return errors.Join(errList...)
}

// Run executes one tool call and returns the role=tool message to append to
// the conversation. Failures are reported inside the message content so the
// model can react to them.
func (td *ToolDispatcher) Run(toolCall openai.ToolCall) openai.ChatCompletionMessage {
	res := openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		ToolCallID: toolCall.ID,
	}

	var content string
	var err error
	if endpoint, exist := td.toolMap[toolCall.Function.Name]; exist {
		content, err = endpoint.Handler(toolCall.Function.Arguments)
	} else {
		err = fmt.Errorf("can not find tool with name %s", toolCall.Function.Name)
	}
	if err != nil {
		log.Warn().Err(err).Str("tool", toolCall.Function.Name).Msg("tool call failed")
	} else {
		log.Debug().Str("tool", toolCall.Function.Name).Str("args", toolCall.Function.Arguments).Msg("tool call")
	}

	entry := &ToolExecLog{
		ID:   len(td.toolLog),
		Name: toolCall.Function.Name,
		Args: toolCall.Function.Arguments,
		Res:  content,
		Err:  err,
	}
	td.toolLog = append(td.toolLog, entry)
	res.Content = entry.formatString()
	return res
}

func (td *ToolDispatcher) GetTools() []openai.Tool {
	res := make([]openai.Tool, 0, len(td.toolMap))
	for _, endpoint := range td.toolMap {
		def := endpoint.Def
		res = append(res, openai.Tool{
			Type:     openai.ToolTypeFunction,
			Function: &def,
		})
	}
	return res
}

func (td *ToolDispatcher) GetToolLog() []*ToolExecLog {
	return td.toolLog
}

func (td *ToolDispatcher) ResetLog() {
	td.toolLog = nil
}
