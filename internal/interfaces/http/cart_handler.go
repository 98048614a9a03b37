package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/application/dto"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/notify"
)

// CartHandler expone el carrito. Las operaciones no fallan a nivel HTTP:
// el rechazo llega en "toasts" junto con el estado (sin cambios) del carrito.
// El Store debe haberse construido con un notify.Notifier para que los toasts lleguen a la respuesta.
type CartHandler struct {
	store *cart.Store
}

// NewCartHandler construye el handler.
func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

// Get godoc
// @Summary      Estado actual del carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.NewCartResponse(h.store.Summary(), nil))
}

// Add godoc
// @Summary      Agregar producto al carrito (o sumar una unidad)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	ctx, toasts := notify.WithToasts(c.UserContext())
	h.store.AddProduct(ctx, in.ProductID)
	return c.JSON(dto.NewCartResponse(h.store.Summary(), toasts.Messages()))
}

// UpdateAmount godoc
// @Summary      Fijar la cantidad de un producto del carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del producto"
// @Param        body  body  dto.UpdateCartItemRequest  true  "Cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) UpdateAmount(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// amount <= 0 no es un 400: el store lo rechaza con su toast.
	ctx, toasts := notify.WithToasts(c.UserContext())
	h.store.UpdateProductAmount(ctx, cart.UpdateProductAmount{ProductID: id, Amount: in.Amount})
	return c.JSON(dto.NewCartResponse(h.store.Summary(), toasts.Messages()))
}

// Remove godoc
// @Summary      Quitar producto del carrito
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	ctx, toasts := notify.WithToasts(c.UserContext())
	h.store.RemoveProduct(ctx, id)
	return c.JSON(dto.NewCartResponse(h.store.Summary(), toasts.Messages()))
}
