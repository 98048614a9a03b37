// Package catalogapi adaptador HTTP del catálogo remoto de la tienda
// (GET /products, GET /products/{id}, GET /stock/{id}).
package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/rocketshoes-cart/internal/domain"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
)

// Verificar en tiempo de compilación que Client implementa ambos puertos.
var (
	_ repository.ProductRepository = (*Client)(nil)
	_ repository.StockRepository   = (*Client)(nil)
)

const maxBody = 1 << 20

// Client consulta productos y stock en la API REST del catálogo.
// Usa net/http de la librería estándar; la API es JSON plano sin autenticación.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient construye el adaptador. baseURL sin barra final, ej. http://localhost:3333.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP permite inyectar el *http.Client (tests, transportes instrumentados).
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
		tracer:     otel.Tracer("github.com/jhoicas/rocketshoes-cart/internal/infrastructure/catalogapi"),
	}
}

// ── Estructuras del protocolo ────────────────────────────────────────────────

// Price es puntero para distinguir un precio ausente o null de un precio 0.
type productPayload struct {
	ID    int              `json:"id"`
	Title string           `json:"title"`
	Price *decimal.Decimal `json:"price"`
	Image string           `json:"image"`
}

type stockPayload struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}

func (p productPayload) toEntity() (*entity.Product, error) {
	if p.Price == nil {
		return nil, fmt.Errorf("%w: producto %d sin precio", domain.ErrMalformedResponse, p.ID)
	}
	return &entity.Product{ID: p.ID, Title: p.Title, Price: *p.Price, Image: p.Image}, nil
}

// ── Implementación de los puertos ────────────────────────────────────────────

// GetByID GET /products/{id}. 404 devuelve (nil, nil).
func (c *Client) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	var p productPayload
	found, err := c.getJSON(ctx, "/products/"+strconv.Itoa(id), &p)
	if err != nil || !found {
		return nil, err
	}
	if p.ID != id {
		return nil, fmt.Errorf("%w: producto %d con id %d", domain.ErrMalformedResponse, id, p.ID)
	}
	return p.toEntity()
}

// List GET /products.
func (c *Client) List(ctx context.Context) ([]*entity.Product, error) {
	var list []productPayload
	found, err := c.getJSON(ctx, "/products", &list)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("catálogo: /products: %w", domain.ErrNotFound)
	}
	out := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		e, err := p.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Get GET /stock/{id}. 404 devuelve (nil, nil).
func (c *Client) Get(ctx context.Context, productID int) (*entity.Stock, error) {
	var s stockPayload
	found, err := c.getJSON(ctx, "/stock/"+strconv.Itoa(productID), &s)
	if err != nil || !found {
		return nil, err
	}
	if s.ID != productID {
		return nil, fmt.Errorf("%w: stock %d con id %d", domain.ErrMalformedResponse, productID, s.ID)
	}
	if s.Amount < 0 {
		return nil, fmt.Errorf("%w: stock negativo %d", domain.ErrMalformedResponse, s.Amount)
	}
	return &entity.Stock{ProductID: s.ID, Amount: s.Amount}, nil
}

// getJSON hace el GET y decodifica la respuesta en out. found=false en 404.
func (c *Client) getJSON(ctx context.Context, path string, out any) (found bool, err error) {
	ctx, span := c.tracer.Start(ctx, "catalogapi GET "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("catálogo: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return false, fmt.Errorf("catálogo: timeout o cancelación: %w", ctx.Err())
		}
		return false, fmt.Errorf("catálogo: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return false, fmt.Errorf("catálogo: leer respuesta: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("catálogo: HTTP %d en %s: %s", resp.StatusCode, path, truncate(raw, 200))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, path, err)
	}
	return true, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}
