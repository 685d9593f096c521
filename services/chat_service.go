package services

import (
	"context"

	"github.com/yukti-cloud/gpu-advisor/llm"
)

// AssistantPersona is the system message prepended to every assistant
// conversation.
const AssistantPersona = "You are a GPU recommendation expert helping users choose cloud GPU instances for their workloads."

type ChatService struct {
	LLM StreamingAPI
}

func NewChatService(streaming StreamingAPI) *ChatService {
	return &ChatService{LLM: streaming}
}

// Stream relays the assistant's reply chunk by chunk. The persona
// message is prepended to the caller's history; chunks reach sink in
// arrival order with no buffering beyond the frame decode.
func (s *ChatService) Stream(ctx context.Context, history []llm.Message, sink func(chunk string) error) error {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: "system", Content: AssistantPersona})
	messages = append(messages, history...)
	return s.LLM.Stream(ctx, messages, sink)
}
