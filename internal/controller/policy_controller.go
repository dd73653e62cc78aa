package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/pkg/apperrors"
	"hr-chatbot-be/internal/pkg/serverutils"
	"hr-chatbot-be/internal/service"
)

type IPolicyController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Reindex(ctx *fiber.Ctx) error
}

type policyController struct {
	policyService service.IPolicyService
	indexService  service.IIndexService
}

func NewPolicyController(policyService service.IPolicyService, indexService service.IIndexService) IPolicyController {
	return &policyController{
		policyService: policyService,
		indexService:  indexService,
	}
}

func (c *policyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/policies")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put("", c.Update)
	h.Delete("", c.Delete)

	r.Post("/policy/reindex", c.Reindex)
}

func (c *policyController) List(ctx *fiber.Ctx) error {
	res, err := c.policyService.FindAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *policyController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePolicyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.policyService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *policyController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdatePolicyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.policyService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *policyController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Query("id")
	if id == "" {
		return fmt.Errorf("policy id is required: %w", apperrors.ErrValidation)
	}

	if err := c.policyService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(dto.DeletePolicyResponse{Success: true})
}

func (c *policyController) Reindex(ctx *fiber.Ctx) error {
	res, err := c.indexService.Reindex(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
