package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"witt-interpreter-be/internal/constant"
	"witt-interpreter-be/internal/dto"
	"witt-interpreter-be/internal/pkg/serverutils"
	"witt-interpreter-be/internal/service"
	"witt-interpreter-be/pkg/llm"
)

type IInterpretController interface {
	RegisterRoutes(r fiber.Router)
	InterpretFramework(ctx *fiber.Ctx) error
	InterpretTransaction(ctx *fiber.Ctx) error
}

type interpretController struct {
	interpretService service.IInterpretService
}

func NewInterpretController(interpretService service.IInterpretService) IInterpretController {
	return &interpretController{
		interpretService: interpretService,
	}
}

func (c *interpretController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interpret")
	h.Post("framework", c.InterpretFramework)
	h.Post("transaction", c.InterpretTransaction)
}

func (c *interpretController) InterpretFramework(ctx *fiber.Ctx) error {
	var req dto.InterpretFrameworkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	fw := constant.FrameworkById(req.Framework)
	if fw == nil {
		return fiber.NewError(fiber.StatusBadRequest, "unknown framework: "+req.Framework)
	}

	result, err := c.interpretService.InterpretFramework(ctx.Context(), req.Query, req.Passages, fw, serverutils.BearerToken(ctx))
	if err != nil {
		return mapGenerationError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate interpretation", dto.InterpretFrameworkResponse{
		Interpretation:    result.Interpretation,
		Structured:        result.Structured,
		ReferencePassages: result.ReferencePassages,
		Framework:         fw.Id,
	}))
}

func (c *interpretController) InterpretTransaction(ctx *fiber.Ctx) error {
	var req dto.InterpretTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.interpretService.InterpretTransaction(ctx.Context(), req.Query, req.WittPassages, req.TransPassages, serverutils.BearerToken(ctx))
	if err != nil {
		return mapGenerationError(err)
	}

	wittRefs, transRefs := service.SplitByOrigin(result.ReferencePassages)
	return ctx.JSON(serverutils.SuccessResponse("Success generate interpretation", dto.InterpretTransactionResponse{
		Interpretation:         result.Interpretation,
		Structured:             result.Structured,
		WittReferencePassages:  wittRefs,
		TransReferencePassages: transRefs,
		Framework:              constant.FrameworkTransactional,
	}))
}

// mapGenerationError translates provider failures into transport statuses.
func mapGenerationError(err error) error {
	switch {
	case errors.Is(err, llm.ErrInvalidCredential):
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid API credential.")
	case errors.Is(err, llm.ErrRateLimited):
		return fiber.NewError(fiber.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
	case errors.Is(err, llm.ErrTimeout):
		return fiber.NewError(fiber.StatusGatewayTimeout, "The request timed out.")
	default:
		return err
	}
}
