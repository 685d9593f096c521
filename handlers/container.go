package handlers

import (
	"github.com/yukti-cloud/gpu-advisor/services"
)

type Handlers struct {
	Auth      *AuthHandler
	Recommend *RecommendHandler
	Request   *RequestHandler
	Chat      *ChatHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(svc.User),
		Recommend: NewRecommendHandler(svc.Recommend),
		Request:   NewRequestHandler(svc.Request),
		Chat:      NewChatHandler(svc.Chat),
	}
}
