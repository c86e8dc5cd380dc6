package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"witt-interpreter-be/internal/dto"
	"witt-interpreter-be/internal/pkg/serverutils"
	"witt-interpreter-be/internal/service"
)

type IInterpretationController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Retry(ctx *fiber.Ctx) error
}

type interpretationController struct {
	interpretationService service.IInterpretationService
}

func NewInterpretationController(interpretationService service.IInterpretationService) IInterpretationController {
	return &interpretationController{
		interpretationService: interpretationService,
	}
}

func (c *interpretationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interpretation/v1")
	h.Post("", c.Start)
	h.Get(":id", c.Show)
	h.Post(":id/retry/:framework", c.Retry)
}

func (c *interpretationController) Start(ctx *fiber.Ctx) error {
	var req dto.StartRunRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	snapshot, err := c.interpretationService.StartRun(ctx.Context(), req.Question, clientKey(ctx), serverutils.BearerToken(ctx))
	if err != nil {
		var throttled *service.ThrottledError
		if errors.As(err, &throttled) {
			return fiber.NewError(fiber.StatusTooManyRequests, throttled.Error())
		}
		if errors.Is(err, service.ErrNoPassagesFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start interpretation run", dto.StartRunResponse{
		RunId:    snapshot.RunId,
		Snapshot: snapshot,
	}))
}

func (c *interpretationController) Show(ctx *fiber.Ctx) error {
	runId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid run id")
	}

	snapshot, err := c.interpretationService.GetRun(runId)
	if err != nil {
		if errors.Is(err, service.ErrRunNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get interpretation run", snapshot))
}

func (c *interpretationController) Retry(ctx *fiber.Ctx) error {
	runId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid run id")
	}
	framework := ctx.Params("framework")

	snapshot, err := c.interpretationService.RetryFramework(ctx.Context(), runId, framework, serverutils.BearerToken(ctx))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRunNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrUnknownFramework):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNoPassagesFound):
			return fiber.NewError(fiber.StatusConflict, "run has no stored passages to retry from")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success retry framework", dto.RetryFrameworkResponse{
		RunId:     runId,
		Framework: framework,
		Snapshot:  snapshot,
	}))
}

// clientKey identifies the submitter for cooldown purposes. A stable client
// header wins over the connection address when present.
func clientKey(ctx *fiber.Ctx) string {
	if id := ctx.Get("X-Client-Id"); id != "" {
		return id
	}
	return ctx.IP()
}
