package agent

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/RyanVSo/Ryan-So-AIE8-MCP-Session/service"
)

// OutputFunc observes each assistant message; returning true stops the loop.
type OutputFunc func(msg openai.ChatCompletionMessage) bool

// BaseAgent runs a chat-completion loop with tool dispatch: send the
// conversation plus tool schemas, execute any tool calls the model returns,
// append the results and repeat until the model stops calling tools.
type BaseAgent struct {
	input        []openai.ChatCompletionMessage
	actionStack  []openai.ChatCompletionMessage
	toolDispatch *service.ToolDispatcher
}

func NewBaseAgent(instruct string, userInput string, tools *service.ToolDispatcher) *BaseAgent {
	input := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: instruct},
		{Role: openai.ChatMessageRoleUser, Content: userInput},
	}
	return &BaseAgent{
		input:        input,
		toolDispatch: tools,
	}
}

func (a *BaseAgent) chat(ctx context.Context, client *openai.Client, model string) (*openai.ChatCompletionChoice, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(a.input)+len(a.actionStack))
	msgs = append(msgs, a.input...)
	msgs = append(msgs, a.actionStack...)

	response, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: msgs,
		Tools:    a.toolDispatch.GetTools(),
	})
	if err != nil {
		return nil, err
	}
	return &response.Choices[0], nil
}

func (a *BaseAgent) handleToolCall(toolCalls []openai.ToolCall) {
	for _, call := range toolCalls {
		res := a.toolDispatch.Run(call)
		a.actionStack = append(a.actionStack, res)
	}
}

func (a *BaseAgent) Run(ctx context.Context, client *openai.Client, model string, outputFunc OutputFunc) error {
	a.actionStack = nil
	for {
		resp, err := a.chat(ctx, client, model)
		if err != nil {
			log.Error().Err(err).Msg("chat failed")
			return err
		}
		a.actionStack = append(a.actionStack, resp.Message)
		a.handleToolCall(resp.Message.ToolCalls)

		if outputFunc != nil && outputFunc(resp.Message) {
			break
		}
		if resp.FinishReason == openai.FinishReasonStop {
			break
		}
	}
	return nil
}
