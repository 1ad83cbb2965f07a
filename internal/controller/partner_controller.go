package controller

import (
	"errors"
	"mime/multipart"

	"packaging-catalog-be/internal/dto"
	"packaging-catalog-be/internal/pkg/serverutils"
	"packaging-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPartnerController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	BulkDelete(ctx *fiber.Ctx) error
}

type partnerController struct {
	partnerService service.IPartnerService
}

func NewPartnerController(partnerService service.IPartnerService) IPartnerController {
	return &partnerController{
		partnerService: partnerService,
	}
}

func (c *partnerController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/catalog/v1/partners")
	pub.Get("", c.List)

	adm := r.Group("/partner/v1")
	adm.Use(serverutils.JwtMiddleware)
	adm.Post("", c.Create)
	adm.Post("bulk-delete", c.BulkDelete)
	adm.Put(":id", c.Update)
	adm.Delete(":id", c.Delete)
}

func (c *partnerController) List(ctx *fiber.Ctx) error {
	res, err := c.partnerService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list partners", res))
}

func (c *partnerController) Create(ctx *fiber.Ctx) error {
	req := &dto.CreatePartnerRequest{
		Name:        ctx.FormValue("name"),
		Description: ctx.FormValue("description"),
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.partnerService.Create(ctx.Context(), req, partnerImage(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create partner", res))
}

func (c *partnerController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid partner id")
	}

	req := &dto.UpdatePartnerRequest{
		Id:          id,
		Name:        ctx.FormValue("name"),
		Description: ctx.FormValue("description"),
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.partnerService.Update(ctx.Context(), req, partnerImage(ctx))
	if err != nil {
		if errors.Is(err, service.ErrPartnerNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Partner not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update partner", res))
}

func (c *partnerController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid partner id")
	}

	if err := c.partnerService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrPartnerNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Partner not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete partner", nil))
}

func (c *partnerController) BulkDelete(ctx *fiber.Ctx) error {
	var req dto.BulkDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.partnerService.BulkDelete(ctx.Context(), req.Ids); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete partners", nil))
}

func partnerImage(ctx *fiber.Ctx) *multipart.FileHeader {
	file, err := ctx.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}
