package controller

import (
	"github.com/gofiber/fiber/v2"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/pkg/serverutils"
	"hr-chatbot-be/internal/service"
)

type ILeaveController interface {
	RegisterRoutes(r fiber.Router)
	Parse(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type leaveController struct {
	leaveService service.ILeaveService
}

func NewLeaveController(leaveService service.ILeaveService) ILeaveController {
	return &leaveController{
		leaveService: leaveService,
	}
}

func (c *leaveController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/leave")
	h.Post("/parse", c.Parse)
	h.Post("/create", c.Create)
	h.Get("/cases", c.List)
}

func (c *leaveController) Parse(ctx *fiber.Ctx) error {
	var req dto.ParseLeaveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.leaveService.Parse(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *leaveController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateLeaveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.leaveService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *leaveController) List(ctx *fiber.Ctx) error {
	res, err := c.leaveService.Cases(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
