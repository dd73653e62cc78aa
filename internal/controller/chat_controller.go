package controller

import (
	"github.com/gofiber/fiber/v2"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/pkg/serverutils"
	"hr-chatbot-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetMessages(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	SimpleChat(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Get("/messages", c.GetMessages)
	h.Post("/reset", c.Reset)
	h.Post("", c.Send)

	r.Post("/simple-chat", c.SimpleChat)
}

func (c *chatController) GetMessages(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetMessages(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) Reset(ctx *fiber.Ctx) error {
	res, err := c.chatService.ResetChat(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatController) SimpleChat(ctx *fiber.Ctx) error {
	var req dto.SimpleChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SimpleChat(ctx.Context(), req.Prompt)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.SimpleChatResponse{Response: res})
}
