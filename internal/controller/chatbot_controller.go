package controller

import (
	"eveshield-be/internal/dto"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/pkg/serverutils"
	"eveshield-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	MentalHealthKnowledgeBase(ctx *fiber.Ctx) error
	MentalHealthReply(ctx *fiber.Ctx) error
	LegalKnowledgeBase(ctx *fiber.Ctx) error
	LegalReply(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
	logger  logger.ILogger
}

func NewChatbotController(service service.IChatbotService, log logger.ILogger) IChatbotController {
	return &chatbotController{service: service, logger: log}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	mh := r.Group("/mental-health/chatbot")
	mh.Get("/", c.MentalHealthKnowledgeBase)
	mh.Post("/", c.MentalHealthReply)

	legal := r.Group("/chatbot/legal")
	legal.Get("/", c.LegalKnowledgeBase)
	legal.Post("/", c.LegalReply)
}

// chatMessage never fails: an unreadable body is an empty message.
// The body itself is not logged.
func (c *chatbotController) chatMessage(ctx *fiber.Ctx) *dto.ChatbotMessageRequest {
	var req dto.ChatbotMessageRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			req = dto.ChatbotMessageRequest{}
			c.logger.Debug("CHATBOT", "Unreadable chatbot body, treating as empty message", map[string]interface{}{
				"path":         ctx.Path(),
				"content_type": string(ctx.Request().Header.ContentType()),
				"error":        err.Error(),
			})
		}
	}
	return &req
}

func (c *chatbotController) MentalHealthKnowledgeBase(ctx *fiber.Ctx) error {
	res, err := c.service.KnowledgeBase(ctx.Context(), service.ChatbotMentalHealth)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Mental health chatbot", res))
}

func (c *chatbotController) MentalHealthReply(ctx *fiber.Ctx) error {
	res, err := c.service.MentalHealth(ctx.Context(), c.chatMessage(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chatbot reply", res))
}

func (c *chatbotController) LegalKnowledgeBase(ctx *fiber.Ctx) error {
	res, err := c.service.KnowledgeBase(ctx.Context(), service.ChatbotLegal)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Legal chatbot", res))
}

func (c *chatbotController) LegalReply(ctx *fiber.Ctx) error {
	res, err := c.service.Legal(ctx.Context(), c.chatMessage(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chatbot reply", res))
}
