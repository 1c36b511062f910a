package dto

import "encoding/json"

type ChatbotMessageRequest struct {
	Message string `json:"message"`
}

type ChatbotReplyResponse struct {
	Response      string          `json:"response"`
	UserMessage   string          `json:"user_message"`
	Topic         string          `json:"topic"`
	KnowledgeBase json.RawMessage `json:"knowledge_base"`
}

type ChatbotKnowledgeBaseResponse struct {
	KnowledgeBase json.RawMessage `json:"knowledge_base"`
}
