// Package seed catálogo en memoria cargado desde un db.json al estilo json-server:
// {"products":[{id,title,price,image}], "stock":[{id,amount}]}.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*Catalog)(nil)
	_ repository.StockRepository   = (*Catalog)(nil)
)

type fileFormat struct {
	Products []struct {
		ID    int              `json:"id"`
		Title string           `json:"title"`
		Price *decimal.Decimal `json:"price"`
		Image string           `json:"image"`
	} `json:"products"`
	Stock []struct {
		ID     int `json:"id"`
		Amount int `json:"amount"`
	} `json:"stock"`
}

// Catalog productos y stock en memoria, de solo lectura tras la carga.
type Catalog struct {
	mu       sync.RWMutex
	products map[int]*entity.Product
	stock    map[int]int
}

// LoadFile lee el catálogo desde path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir catálogo %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodifica el catálogo. Rechaza ids repetidos, ids <= 0, productos sin precio y stock negativo.
func Load(r io.Reader) (*Catalog, error) {
	var in fileFormat
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}
	c := &Catalog{
		products: make(map[int]*entity.Product, len(in.Products)),
		stock:    make(map[int]int, len(in.Stock)),
	}
	for _, p := range in.Products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("producto con id inválido %d", p.ID)
		}
		if _, dup := c.products[p.ID]; dup {
			return nil, fmt.Errorf("producto %d repetido", p.ID)
		}
		if p.Price == nil {
			return nil, fmt.Errorf("producto %d sin precio", p.ID)
		}
		c.products[p.ID] = &entity.Product{ID: p.ID, Title: p.Title, Price: *p.Price, Image: p.Image}
	}
	for _, s := range in.Stock {
		if s.Amount < 0 {
			return nil, fmt.Errorf("stock negativo para %d", s.ID)
		}
		if _, dup := c.stock[s.ID]; dup {
			return nil, fmt.Errorf("stock %d repetido", s.ID)
		}
		c.stock[s.ID] = s.Amount
	}
	return c, nil
}

// GetByID devuelve una copia del producto o (nil, nil).
func (c *Catalog) GetByID(_ context.Context, id int) (*entity.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// List devuelve el catálogo ordenado por ID.
func (c *Catalog) List(_ context.Context) ([]*entity.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entity.Product, 0, len(c.products))
	for _, p := range c.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Get devuelve el stock del producto o (nil, nil).
func (c *Catalog) Get(_ context.Context, productID int) (*entity.Stock, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	amount, ok := c.stock[productID]
	if !ok {
		return nil, nil
	}
	return &entity.Stock{ProductID: productID, Amount: amount}, nil
}

// Stock devuelve todos los registros de stock ordenados (para sembrar Postgres).
func (c *Catalog) Stock() []*entity.Stock {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entity.Stock, 0, len(c.stock))
	for id, amount := range c.stock {
		out = append(out, &entity.Stock{ProductID: id, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
