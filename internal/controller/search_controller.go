package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"witt-interpreter-be/internal/dto"
	"witt-interpreter-be/internal/pkg/serverutils"
	"witt-interpreter-be/internal/service"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	SearchWittgenstein(ctx *fiber.Ctx) error
	SearchTransaction(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search")
	h.Post("wittgenstein", c.SearchWittgenstein)
	h.Post("transaction", c.SearchTransaction)
}

func (c *searchController) SearchWittgenstein(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	passages, err := c.searchService.SearchWittgenstein(ctx.Context(), req.Query, req.CollectionName, serverutils.BearerToken(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNoPassagesFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return mapGenerationError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search passages", dto.SearchResponse{
		Passages:  passages,
		Query:     req.Query,
		Count:     len(passages),
		Timestamp: time.Now(),
	}))
}

func (c *searchController) SearchTransaction(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	passages, err := c.searchService.SearchTransaction(ctx.Context(), req.Query, req.CollectionName, serverutils.BearerToken(ctx))
	if err != nil {
		return mapGenerationError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search passages", dto.SearchResponse{
		Passages:  passages,
		Query:     req.Query,
		Count:     len(passages),
		Timestamp: time.Now(),
	}))
}
