package controller

import (
	"github.com/gofiber/fiber/v2"

	"witt-interpreter-be/internal/constant"
	"witt-interpreter-be/internal/pkg/serverutils"
)

type IFrameworkController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type frameworkController struct{}

func NewFrameworkController() IFrameworkController {
	return &frameworkController{}
}

func (c *frameworkController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/frameworks/v1")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *frameworkController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success list frameworks", constant.Frameworks))
}

func (c *frameworkController) Show(ctx *fiber.Ctx) error {
	fw := constant.FrameworkById(ctx.Params("id"))
	if fw == nil {
		return fiber.NewError(fiber.StatusNotFound, "unknown framework: "+ctx.Params("id"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get framework", fw))
}
