package controller

import (
	"github.com/gofiber/fiber/v2"

	"hr-chatbot-be/internal/service"
)

type IEmployeeController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Seed(ctx *fiber.Ctx) error
}

type employeeController struct {
	employeeService service.IEmployeeService
}

func NewEmployeeController(employeeService service.IEmployeeService) IEmployeeController {
	return &employeeController{
		employeeService: employeeService,
	}
}

func (c *employeeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/employee")
	h.Get("", c.Show)
	h.Post("/seed", c.Seed)
}

func (c *employeeController) Show(ctx *fiber.Ctx) error {
	res, err := c.employeeService.Get(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *employeeController) Seed(ctx *fiber.Ctx) error {
	res, err := c.employeeService.Seed(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
