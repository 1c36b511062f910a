package service

import (
	"context"
	"encoding/json"
	"fmt"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/pkg/chatbot"
)

type ChatbotKind string

const (
	ChatbotMentalHealth ChatbotKind = "mental_health"
	ChatbotLegal        ChatbotKind = "legal"
)

type IChatbotService interface {
	MentalHealth(ctx context.Context, req *dto.ChatbotMessageRequest) (*dto.ChatbotReplyResponse, error)
	Legal(ctx context.Context, req *dto.ChatbotMessageRequest) (*dto.ChatbotReplyResponse, error)
	KnowledgeBase(ctx context.Context, kind ChatbotKind) (*dto.ChatbotKnowledgeBaseResponse, error)
}

type chatbotService struct {
	mentalHealth *chatbot.MentalHealthResolver
	legal        *chatbot.LegalResolver
	logger       logger.ILogger

	// serialized once, the knowledge bases never change at runtime
	mentalHealthKB json.RawMessage
	legalKB        json.RawMessage
}

func NewChatbotService(mentalHealth *chatbot.MentalHealthResolver, legal *chatbot.LegalResolver, log logger.ILogger) (IChatbotService, error) {
	mhKB := mentalHealth.KnowledgeBase()
	if err := mhKB.Validate(); err != nil {
		return nil, err
	}
	legalKB := legal.KnowledgeBase()
	if err := legalKB.Validate(); err != nil {
		return nil, err
	}

	mhJSON, err := json.Marshal(mhKB)
	if err != nil {
		return nil, fmt.Errorf("serialize mental health knowledge base: %w", err)
	}
	legalJSON, err := json.Marshal(legalKB)
	if err != nil {
		return nil, fmt.Errorf("serialize legal knowledge base: %w", err)
	}

	return &chatbotService{
		mentalHealth:   mentalHealth,
		legal:          legal,
		logger:         log,
		mentalHealthKB: mhJSON,
		legalKB:        legalJSON,
	}, nil
}

func messageOf(req *dto.ChatbotMessageRequest) string {
	if req == nil {
		return ""
	}
	return req.Message
}

func (s *chatbotService) MentalHealth(ctx context.Context, req *dto.ChatbotMessageRequest) (*dto.ChatbotReplyResponse, error) {
	msg := messageOf(req)
	topic := s.mentalHealth.ResolveTopic(msg)
	response := s.mentalHealth.Respond(topic)

	// message text is never logged
	s.logger.Debug("CHATBOT", "Mental health reply", map[string]interface{}{"topic": string(topic)})

	return &dto.ChatbotReplyResponse{
		Response:      response,
		UserMessage:   msg,
		Topic:         string(topic),
		KnowledgeBase: s.mentalHealthKB,
	}, nil
}

func (s *chatbotService) Legal(ctx context.Context, req *dto.ChatbotMessageRequest) (*dto.ChatbotReplyResponse, error) {
	msg := messageOf(req)
	topic := s.legal.ResolveTopic(msg)
	response := s.legal.Respond(topic)

	s.logger.Debug("CHATBOT", "Legal reply", map[string]interface{}{"topic": string(topic)})

	return &dto.ChatbotReplyResponse{
		Response:      response,
		UserMessage:   msg,
		Topic:         string(topic),
		KnowledgeBase: s.legalKB,
	}, nil
}

func (s *chatbotService) KnowledgeBase(ctx context.Context, kind ChatbotKind) (*dto.ChatbotKnowledgeBaseResponse, error) {
	switch kind {
	case ChatbotMentalHealth:
		return &dto.ChatbotKnowledgeBaseResponse{KnowledgeBase: s.mentalHealthKB}, nil
	case ChatbotLegal:
		return &dto.ChatbotKnowledgeBaseResponse{KnowledgeBase: s.legalKB}, nil
	default:
		return nil, fmt.Errorf("unknown chatbot %q", kind)
	}
}
