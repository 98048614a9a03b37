package usecase

import (
	"context"

	"github.com/jhoicas/rocketshoes-cart/internal/application/dto"
	"github.com/jhoicas/rocketshoes-cart/internal/domain"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
)

// CatalogUseCase lectura del catálogo y del stock para la API de la tienda.
type CatalogUseCase struct {
	products repository.ProductRepository
	stock    repository.StockRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, stock repository.StockRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, stock: stock}
}

// GetProduct obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *CatalogUseCase) GetProduct(ctx context.Context, id int) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.products.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	out := dto.NewProductResponse(p)
	return &out, nil
}

// ListProducts lista todo el catálogo.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.NewProductResponse(p))
	}
	return items, nil
}

// GetStock stock disponible de un producto. Devuelve (nil, nil) si no hay registro.
func (uc *CatalogUseCase) GetStock(ctx context.Context, productID int) (*dto.StockResponse, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.stock.Get(ctx, productID)
	if err != nil || s == nil {
		return nil, err
	}
	out := dto.NewStockResponse(s)
	return &out, nil
}
