package dto

type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system" example:"user"`
	Content string `json:"content" binding:"required" example:"Which GPU suits a 7B model?"`
}

type ChatInput struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}
