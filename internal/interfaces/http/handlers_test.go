package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/application/dto"
	"github.com/jhoicas/rocketshoes-cart/internal/application/usecase"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/notify"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/seed"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/rocketshoes-cart/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testCatalog = `{
  "products": [
    {"id": 1, "title": "Zapatillas de Caminata Livianas", "price": 179.9, "image": "1.jpg"},
    {"id": 2, "title": "Zapatillas VR de Caminata", "price": 139.9, "image": "2.jpg"}
  ],
  "stock": [
    {"id": 1, "amount": 3},
    {"id": 2, "amount": 1}
  ]
}`

// buildTestApp arma la aplicación completa sobre el catálogo seed y storage en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	catalog, err := seed.Load(strings.NewReader(testCatalog))
	require.NoError(t, err)

	store := cart.NewStore(cart.Deps{
		Products: catalog,
		Stock:    catalog,
		Storage:  storage.NewMemoryStore(),
		Notifier: notify.New(nil),
	})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC: usecase.NewCatalogUseCase(catalog, catalog),
		Cart:      store,
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_ListProducts(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/products", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]dto.ProductResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "179.9", list[0].Price.String())
}

func TestCatalog_GetProduct(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/products/2", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	p := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Zapatillas VR de Caminata", p.Title)

	resp = doRequest(t, app, http.MethodGet, "/products/99", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = doRequest(t, app, http.MethodGet, "/products/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCatalog_GetStock(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/stock/1", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	s := decode[dto.StockResponse](t, resp)
	assert.Equal(t, 1, s.ID)
	assert.Equal(t, 3, s.Amount)

	resp = doRequest(t, app, http.MethodGet, "/stock/99", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_FlujoCompleto(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/cart", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	empty := decode[dto.CartResponse](t, resp)
	assert.Empty(t, empty.Items)
	assert.NotNil(t, empty.Toasts)

	resp = doRequest(t, app, http.MethodPost, "/api/cart/items", `{"product_id":1}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	added := decode[dto.CartResponse](t, resp)
	require.Len(t, added.Items, 1)
	assert.Equal(t, 1, added.Items[0].Amount)
	assert.Empty(t, added.Toasts)

	// Segunda vez: suma una unidad.
	resp = doRequest(t, app, http.MethodPost, "/api/cart/items", `{"product_id":1}`)
	again := decode[dto.CartResponse](t, resp)
	assert.Equal(t, 2, again.Items[0].Amount)
	assert.Equal(t, 2, again.Units)
	assert.Equal(t, "359.8", again.Total.String())
	assert.Equal(t, "359.8", again.Items[0].Subtotal.String())

	resp = doRequest(t, app, http.MethodPut, "/api/cart/items/1", `{"amount":3}`)
	updated := decode[dto.CartResponse](t, resp)
	assert.Equal(t, 3, updated.Items[0].Amount)
	assert.Empty(t, updated.Toasts)

	resp = doRequest(t, app, http.MethodDelete, "/api/cart/items/1", "")
	removed := decode[dto.CartResponse](t, resp)
	assert.Empty(t, removed.Items)
	assert.Equal(t, "0", removed.Total.String())
}

func TestCart_FueraDeStock(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/api/cart/items", `{"product_id":2}`)

	resp := doRequest(t, app, http.MethodPut, "/api/cart/items/2", `{"amount":2}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.CartResponse](t, resp)
	assert.Equal(t, []string{"Cantidad solicitada fuera de stock"}, out.Toasts)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Items[0].Amount, "el carrito no cambia")
}

func TestCart_CantidadInvalida(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/api/cart/items", `{"product_id":1}`)

	resp := doRequest(t, app, http.MethodPut, "/api/cart/items/1", `{"amount":0}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.CartResponse](t, resp)
	assert.Equal(t, []string{"Error al modificar la cantidad del producto"}, out.Toasts)
}

func TestCart_ProductoInexistente(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/cart/items", `{"product_id":99}`)
	out := decode[dto.CartResponse](t, resp)
	assert.Equal(t, []string{"Error al agregar el producto"}, out.Toasts)
	assert.Empty(t, out.Items)

	resp = doRequest(t, app, http.MethodDelete, "/api/cart/items/99", "")
	out = decode[dto.CartResponse](t, resp)
	assert.Equal(t, []string{"Error al eliminar el producto"}, out.Toasts)
}

func TestCart_PeticionMalformada(t *testing.T) {
	app := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/cart/items", `{"product_id":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/cart/items", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPut, "/api/cart/items/x", `{"amount":1}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/cart/items/-1", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
