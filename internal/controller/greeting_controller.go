package controller

import (
	"github.com/gofiber/fiber/v2"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/pkg/serverutils"
	"hr-chatbot-be/internal/service"
)

type IGreetingController interface {
	RegisterRoutes(r fiber.Router)
	Greet(ctx *fiber.Ctx) error
}

type greetingController struct {
	greetingService service.IGreetingService
}

func NewGreetingController(greetingService service.IGreetingService) IGreetingController {
	return &greetingController{
		greetingService: greetingService,
	}
}

func (c *greetingController) RegisterRoutes(r fiber.Router) {
	r.Post("/greeting", c.Greet)
}

func (c *greetingController) Greet(ctx *fiber.Ctx) error {
	var req dto.GreetingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.greetingService.Greet(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
