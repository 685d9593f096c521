package services

import "github.com/yukti-cloud/gpu-advisor/repositories"

type Services struct {
	User      *UserService
	Request   *RequestService
	Recommend *RecommendService
	Chat      *ChatService
}

func New(repos *repositories.Repos, pricing PricingAPI, completion CompletionAPI, streaming StreamingAPI) *Services {
	return &Services{
		User:      NewUserService(repos),
		Request:   NewRequestService(repos),
		Recommend: NewRecommendService(pricing, completion),
		Chat:      NewChatService(streaming),
	}
}
