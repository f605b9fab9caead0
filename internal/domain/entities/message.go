package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tmc/langchaingo/llms"
)

type ToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

// Message is the wire shape exchanged with the chat frontend: a role tag,
// plain text content and, for assistant turns, the tool calls made while
// producing it.
type Message struct {
	ID        string     `json:"id,omitempty"`
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Timestamp time.Time  `json:"timestamp,omitzero"`
}

func NewMessage(role, content string) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// ToChatMessage converts a wire message into its structured langchain
// counterpart. Unknown roles become generic messages carrying the role
// verbatim. Tool calls are not reconstructed in this direction.
func ToChatMessage(m Message) llms.ChatMessage {
	switch m.Role {
	case "user":
		return llms.HumanChatMessage{Content: m.Content}
	case "assistant":
		return llms.AIChatMessage{Content: m.Content}
	default:
		return llms.GenericChatMessage{Role: m.Role, Content: m.Content}
	}
}

// FromChatMessage converts a structured message back to the wire shape.
// Assistant messages keep their tool-call list; any other non-human type
// uses its type tag as the role.
func FromChatMessage(cm llms.ChatMessage) Message {
	switch m := cm.(type) {
	case llms.HumanChatMessage:
		return Message{Role: "user", Content: m.Content}
	case llms.AIChatMessage:
		return Message{
			Role:      "assistant",
			Content:   m.Content,
			ToolCalls: fromLLMToolCalls(m.ToolCalls),
		}
	case llms.GenericChatMessage:
		return Message{Role: m.Role, Content: m.Content}
	default:
		return Message{Role: string(cm.GetType()), Content: cm.GetContent()}
	}
}

func ToChatMessages(messages []Message) []llms.ChatMessage {
	return lo.Map(messages, func(m Message, _ int) llms.ChatMessage {
		return ToChatMessage(m)
	})
}

func FromChatMessages(messages []llms.ChatMessage) []Message {
	return lo.Map(messages, func(cm llms.ChatMessage, _ int) Message {
		return FromChatMessage(cm)
	})
}

func fromLLMToolCalls(calls []llms.ToolCall) []ToolCall {
	if len(calls) == 0 {
		return nil
	}
	return lo.Map(calls, func(tc llms.ToolCall, _ int) ToolCall {
		call := ToolCall{ID: tc.ID, Type: tc.Type}
		if tc.FunctionCall != nil {
			call.Function.Name = tc.FunctionCall.Name
			call.Function.Arguments = tc.FunctionCall.Arguments
		}
		return call
	})
}
