package controller

import (
	"errors"

	"packaging-catalog-be/internal/pkg/serverutils"
	"packaging-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPriceListController interface {
	RegisterRoutes(r fiber.Router)
	Latest(ctx *fiber.Ctx) error
	Table(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type priceListController struct {
	priceListService service.IPriceListService
}

func NewPriceListController(priceListService service.IPriceListService) IPriceListController {
	return &priceListController{
		priceListService: priceListService,
	}
}

func (c *priceListController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/catalog/v1/price-list")
	pub.Get("", c.Latest)
	pub.Get("table", c.Table)

	adm := r.Group("/price-list/v1")
	adm.Use(serverutils.JwtMiddleware)
	adm.Post("", c.Upload)
	adm.Delete(":id", c.Delete)
}

func (c *priceListController) Latest(ctx *fiber.Ctx) error {
	res, err := c.priceListService.Latest(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoPriceList) {
			return fiber.NewError(fiber.StatusNotFound, "No price list found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show price list", res))
}

func (c *priceListController) Table(ctx *fiber.Ctx) error {
	res, err := c.priceListService.Table(ctx.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoPriceList) {
			return fiber.NewError(fiber.StatusNotFound, "No price list found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show price list table", res))
}

func (c *priceListController) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil || file.Size == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Please select a file to upload")
	}

	res, err := c.priceListService.Upload(ctx.Context(), file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload price list", res))
}

func (c *priceListController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid price list id")
	}

	if err := c.priceListService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrNoPriceList) {
			return fiber.NewError(fiber.StatusNotFound, "No price list found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete price list", nil))
}
