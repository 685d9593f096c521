package services

import (
	"context"

	"github.com/yukti-cloud/gpu-advisor/llm"
	"github.com/yukti-cloud/gpu-advisor/models"
)

// PricingAPI is the upstream instance catalog.
type PricingAPI interface {
	FetchOptions(ctx context.Context, region string) ([]models.GPUOption, error)
}

// CompletionAPI is a chat-completion endpoint used for the one-shot
// recommendation flow.
type CompletionAPI interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// StreamingAPI is a chat-completion endpoint used for the streaming
// assistant flow.
type StreamingAPI interface {
	Stream(ctx context.Context, messages []llm.Message, sink func(chunk string) error) error
}
