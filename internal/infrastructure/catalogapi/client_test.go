package catalogapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketshoes-cart/internal/domain"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/catalogapi"
)

// newServer responde rutas fijas: path -> (status, body).
func newServer(t *testing.T, routes map[string]struct {
	status int
	body   string
}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(route.status)
		_, _ = w.Write([]byte(route.body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

type route = struct {
	status int
	body   string
}

func TestClient_GetByID(t *testing.T) {
	srv := newServer(t, map[string]route{
		"/products/1": {http.StatusOK, `{"id":1,"title":"Zapatillas de Caminata Livianas y Cómodas","price":179.9,"image":"https://img/1.jpg"}`},
	})
	c := catalogapi.NewClient(srv.URL+"/", time.Second)

	p, err := c.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Zapatillas de Caminata Livianas y Cómodas", p.Title)
	assert.Equal(t, "179.9", p.Price.String())
	assert.Equal(t, "https://img/1.jpg", p.Image)
}

func TestClient_GetByID_NoEncontrado(t *testing.T) {
	srv := newServer(t, map[string]route{})
	c := catalogapi.NewClient(srv.URL, time.Second)

	p, err := c.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestClient_GetByID_Malformado(t *testing.T) {
	srv := newServer(t, map[string]route{
		"/products/1": {http.StatusOK, `{"id":"uno"`},
		"/products/2": {http.StatusOK, `{"id":3,"title":"otro"}`},
	})
	c := catalogapi.NewClient(srv.URL, time.Second)

	_, err := c.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)

	_, err = c.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse, "el id de la respuesta debe coincidir")
}

func TestClient_PrecioAusenteONulo(t *testing.T) {
	srv := newServer(t, map[string]route{
		"/products/1": {http.StatusOK, `{"id":1,"title":"A","price":null,"image":""}`},
		"/products/2": {http.StatusOK, `{"id":2,"title":"B","image":""}`},
		"/products/3": {http.StatusOK, `{"id":3,"title":"C","price":0,"image":""}`},
		"/products":   {http.StatusOK, `[{"id":1,"title":"A","price":10,"image":""},{"id":2,"title":"B","price":null,"image":""}]`},
	})
	c := catalogapi.NewClient(srv.URL, time.Second)

	_, err := c.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse, "precio null")

	_, err = c.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse, "precio ausente")

	p, err := c.GetByID(context.Background(), 3)
	require.NoError(t, err, "precio 0 explícito es válido")
	assert.True(t, p.Price.IsZero())

	_, err = c.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestClient_ErrorHTTP(t *testing.T) {
	srv := newServer(t, map[string]route{
		"/products/1": {http.StatusInternalServerError, `boom`},
	})
	c := catalogapi.NewClient(srv.URL, time.Second)

	_, err := c.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestClient_ServidorInalcanzable(t *testing.T) {
	srv := newServer(t, map[string]route{})
	url := srv.URL
	srv.Close()

	_, err := catalogapi.NewClient(url, time.Second).Get(context.Background(), 1)
	assert.Error(t, err)
}

func TestClient_ContextoCancelado(t *testing.T) {
	srv := newServer(t, map[string]route{"/stock/1": {http.StatusOK, `{"id":1,"amount":3}`}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalogapi.NewClient(srv.URL, time.Second).Get(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Stock(t *testing.T) {
	srv := newServer(t, map[string]route{
		"/stock/1": {http.StatusOK, `{"id":1,"amount":3}`},
		"/stock/2": {http.StatusOK, `{"id":2,"amount":-1}`},
	})
	c := catalogapi.NewClient(srv.URL, time.Second)

	s, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 1, s.ProductID)
	assert.Equal(t, 3, s.Amount)

	_, err = c.Get(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)

	missing, err := c.Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClient_List(t *testing.T) {
	srv := newServer(t, map[string]route{
		"/products": {http.StatusOK, `[{"id":1,"title":"A","price":10,"image":""},{"id":2,"title":"B","price":"20.5","image":""}]`},
	})
	c := catalogapi.NewClient(srv.URL, time.Second)

	list, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "20.5", list[1].Price.String(), "el precio puede venir como número o como string")
}
