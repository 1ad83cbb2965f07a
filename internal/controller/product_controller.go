package controller

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strconv"

	"packaging-catalog-be/internal/dto"
	"packaging-catalog-be/internal/pkg/serverutils"
	"packaging-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Featured(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Linked(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	BulkDelete(ctx *fiber.Ctx) error
	RemoveImage(ctx *fiber.Ctx) error
	QuickSearch(ctx *fiber.Ctx) error
}

type productController struct {
	productService service.IProductService
}

func NewProductController(productService service.IProductService) IProductController {
	return &productController{
		productService: productService,
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	// Public storefront
	pub := r.Group("/catalog/v1/products")
	pub.Get("", c.List)
	pub.Get("featured", c.Featured)
	pub.Get(":id", c.Show)
	pub.Get(":id/linked", c.Linked)

	// Admin back-office
	adm := r.Group("/product/v1")
	adm.Use(serverutils.JwtMiddleware)
	adm.Get("quick-search", c.QuickSearch)
	adm.Post("", c.Create)
	adm.Post("bulk-delete", c.BulkDelete)
	adm.Put(":id", c.Update)
	adm.Put(":id/remove-image", c.RemoveImage)
	adm.Delete(":id", c.Delete)
}

func (c *productController) List(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("page_size", service.DefaultPageSize)
	query := ctx.Query("q", "")
	categoryId := ctx.Query("category_id", "")

	if page < 1 || pageSize < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "page and page_size must be >= 1")
	}

	res, err := c.productService.List(ctx.Context(), query, categoryId, page, pageSize)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *productController) Featured(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", service.DefaultFeaturedLimit)

	res, err := c.productService.Featured(ctx.Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list featured products", res))
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	res, err := c.productService.Show(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

func (c *productController) Linked(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	product, err := c.productService.Show(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}

	res, err := c.productService.Linked(ctx.Context(), product.LinkedProductIds)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list linked products", res))
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	req, images, err := parseProductForm(ctx)
	if err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Create(ctx.Context(), req, images)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create product", res))
}

func (c *productController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	createReq, images, err := parseProductForm(ctx)
	if err != nil {
		return err
	}

	req := &dto.UpdateProductRequest{
		Id:               id,
		SKU:              createReq.SKU,
		Name:             createReq.Name,
		Price:            createReq.Price,
		Unit:             createReq.Unit,
		CategoryId:       createReq.CategoryId,
		Description:      createReq.Description,
		WholesalePrice:   createReq.WholesalePrice,
		WholesaleAmount:  createReq.WholesaleAmount,
		HeatProduct:      createReq.HeatProduct,
		LinkedProductIds: createReq.LinkedProductIds,
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Update(ctx.Context(), req, images)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update product", res))
}

func (c *productController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	if err := c.productService.Delete(ctx.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete product", nil))
}

func (c *productController) BulkDelete(ctx *fiber.Ctx) error {
	var req dto.BulkDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.productService.BulkDelete(ctx.Context(), req.Ids); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete products", nil))
}

func (c *productController) RemoveImage(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	var req dto.RemoveProductImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.productService.RemoveImage(ctx.Context(), &req); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove product image", nil))
}

func (c *productController) QuickSearch(ctx *fiber.Ctx) error {
	term := ctx.Query("q", "")
	limit := ctx.QueryInt("limit", service.DefaultQuickSearchLimit)

	var excludeId *uuid.UUID
	if raw := ctx.Query("exclude_id", ""); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid exclude_id")
		}
		excludeId = &id
	}

	res, err := c.productService.QuickSearch(ctx.Context(), term, excludeId, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success quick search products", res))
}

// parseProductForm assembles the typed request from the multipart form the
// admin UI submits. Image files ride along under the "images" field.
func parseProductForm(ctx *fiber.Ctx) (*dto.CreateProductRequest, []*multipart.FileHeader, error) {
	price, err := strconv.ParseFloat(ctx.FormValue("price"), 64)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid price")
	}

	categoryId, err := uuid.Parse(ctx.FormValue("category_id"))
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid category_id")
	}

	req := &dto.CreateProductRequest{
		SKU:         ctx.FormValue("sku"),
		Name:        ctx.FormValue("name"),
		Price:       price,
		Unit:        ctx.FormValue("unit"),
		CategoryId:  categoryId,
		Description: ctx.FormValue("description"),
		HeatProduct: ctx.FormValue("heat_product") == "true",
	}

	if raw := ctx.FormValue("wholesale_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid wholesale_price")
		}
		req.WholesalePrice = &v
	}

	if raw := ctx.FormValue("wholesale_amount"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid wholesale_amount")
		}
		req.WholesaleAmount = &v
	}

	// The picker submits linked ids as one JSON-encoded array field.
	if raw := ctx.FormValue("linked_product_ids"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.LinkedProductIds); err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid linked_product_ids")
		}
	}

	var images []*multipart.FileHeader
	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		images = form.File["images"]
	}

	return req, images, nil
}
