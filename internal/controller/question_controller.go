package controller

import (
	"github.com/gofiber/fiber/v2"

	"witt-interpreter-be/internal/dto"
	"witt-interpreter-be/internal/pkg/serverutils"
	"witt-interpreter-be/internal/service"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	Improve(ctx *fiber.Ctx) error
}

type questionController struct {
	questionService service.IQuestionService
}

func NewQuestionController(questionService service.IQuestionService) IQuestionController {
	return &questionController{
		questionService: questionService,
	}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/question/v1")
	h.Post("improve", c.Improve)
}

func (c *questionController) Improve(ctx *fiber.Ctx) error {
	var req dto.ImproveQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.questionService.ImproveQuestion(ctx.Context(), req.Question, serverutils.BearerToken(ctx))
	if err != nil {
		return mapGenerationError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success improve question", res))
}
