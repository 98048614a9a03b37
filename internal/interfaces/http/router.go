package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/application/usecase"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	Cart      *cart.Store
	Logger    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Logger))

	// Catálogo con las mismas rutas del json-server de la tienda (lo consume catalogapi.Client).
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	app.Get("/products", catalogHandler.ListProducts)
	app.Get("/products/:id", catalogHandler.GetProduct)
	app.Get("/stock/:id", catalogHandler.GetStock)

	// Carrito
	api := app.Group("/api")
	cartGroup := api.Group("/cart")
	cartHandler := NewCartHandler(deps.Cart)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/items", cartHandler.Add)
	cartGroup.Put("/items/:id", cartHandler.UpdateAmount)
	cartGroup.Delete("/items/:id", cartHandler.Remove)
}
