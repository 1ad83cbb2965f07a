package controller

import (
	"errors"

	"packaging-catalog-be/internal/dto"
	"packaging-catalog-be/internal/pkg/serverutils"
	"packaging-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type categoryController struct {
	categoryService service.ICategoryService
}

func NewCategoryController(categoryService service.ICategoryService) ICategoryController {
	return &categoryController{
		categoryService: categoryService,
	}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/catalog/v1/categories")
	pub.Get("", c.List)

	adm := r.Group("/category/v1")
	adm.Use(serverutils.JwtMiddleware)
	adm.Post("", c.Create)
	adm.Put(":id", c.Update)
	adm.Delete(":id", c.Delete)
}

func (c *categoryController) List(ctx *fiber.Ctx) error {
	res, err := c.categoryService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list categories", res))
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.categoryService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create category", res))
}

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.categoryService.Update(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update category", res))
}

func (c *categoryController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
	}

	if err := c.categoryService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrCategoryInUse) {
			return fiber.NewError(fiber.StatusConflict, "Category still has products")
		}
		if errors.Is(err, service.ErrCategoryNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete category", nil))
}
