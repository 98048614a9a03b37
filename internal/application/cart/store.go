package cart

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/rocketshoes-cart/internal/domain"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

// DefaultStorageKey clave namespaced del snapshot del carrito.
const DefaultStorageKey = "@RocketShoes:cart"

const tracerName = "github.com/jhoicas/rocketshoes-cart/internal/application/cart"

// UpdateProductAmount entrada de Store.UpdateProductAmount.
type UpdateProductAmount struct {
	ProductID int
	Amount    int
}

// Deps dependencias del Store. Products, Stock y Storage son obligatorias.
type Deps struct {
	Products repository.ProductRepository
	Stock    repository.StockRepository
	Storage  repository.KeyValueStore
	Notifier Notifier
	Logger   *logger.Logger
	Key      string // vacío = DefaultStorageKey
}

// Store contenedor de estado del carrito. Es dueño exclusivo de la secuencia en memoria;
// el snapshot persistido es un espejo que se sobrescribe completo en cada mutación exitosa.
//
// Ninguna operación devuelve error: los fallos se registran en el log con su causa y
// se notifican al usuario con un mensaje fijo por Kind.
type Store struct {
	mu    sync.RWMutex
	items []entity.CartItem

	key      string
	products repository.ProductRepository
	stock    repository.StockRepository
	storage  repository.KeyValueStore
	notifier Notifier
	log      *logger.Logger
	tracer   trace.Tracer
}

// NewStore construye el store y carga una única vez el snapshot persistido.
// Si no existe o está malformado el carrito arranca vacío.
func NewStore(deps Deps) *Store {
	s := &Store{
		key:      deps.Key,
		products: deps.Products,
		stock:    deps.Stock,
		storage:  deps.Storage,
		notifier: deps.Notifier,
		log:      deps.Logger,
		tracer:   otel.Tracer(tracerName),
	}
	if s.key == "" {
		s.key = DefaultStorageKey
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.notifier == nil {
		s.notifier = NotifierFunc(func(context.Context, string) {})
	}
	s.items = s.load()
	return s
}

func (s *Store) load() []entity.CartItem {
	raw, found, err := s.storage.Get(s.key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("leer snapshot del carrito; se inicia vacío")
		return []entity.CartItem{}
	}
	if !found {
		return []entity.CartItem{}
	}
	items, err := DecodeSnapshot(raw)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("snapshot descartado; se inicia vacío")
		return []entity.CartItem{}
	}
	s.log.Debug().Int("items", len(items)).Msg("carrito restaurado")
	return items
}

// Cart devuelve una copia de la secuencia actual (orden de inserción).
func (s *Store) Cart() []entity.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// AddProduct agrega el producto con cantidad 1. Si ya está en el carrito delega en
// UpdateProductAmount con la cantidad actual + 1, que valida contra el stock.
func (s *Store) AddProduct(ctx context.Context, productID int) {
	ctx, op := s.begin(ctx, "AddProduct", productID)
	defer op.end()

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		s.fail(ctx, op, KindProductAddFailed, fmt.Errorf("consultar producto: %w", err))
		return
	}
	if product == nil {
		s.fail(ctx, op, KindProductAddFailed, domain.ErrNotFound)
		return
	}
	if product.ID != productID {
		s.fail(ctx, op, KindProductAddFailed,
			fmt.Errorf("%w: se pidió %d y llegó %d", domain.ErrMalformedResponse, productID, product.ID))
		return
	}

	s.mu.Lock()
	if idx := indexOf(s.items, productID); idx >= 0 {
		next := s.items[idx].Amount + 1
		s.mu.Unlock()
		op.log.Debug().Int("amount", next).Msg("producto ya en el carrito; se incrementa la cantidad")
		s.UpdateProductAmount(ctx, UpdateProductAmount{ProductID: productID, Amount: next})
		return
	}
	next := append(slices.Clone(s.items), entity.NewCartItem(product))
	err = s.commitLocked(next)
	s.mu.Unlock()
	if err != nil {
		s.fail(ctx, op, KindProductAddFailed, err)
		return
	}
	op.log.Info().Int("items", len(next)).Msg("producto agregado")
}

// RemoveProduct quita la línea del producto. Si no está en el carrito notifica
// KindProductRemoveFailed y no escribe nada.
func (s *Store) RemoveProduct(ctx context.Context, productID int) {
	ctx, op := s.begin(ctx, "RemoveProduct", productID)
	defer op.end()

	s.mu.Lock()
	idx := indexOf(s.items, productID)
	if idx < 0 {
		s.mu.Unlock()
		s.fail(ctx, op, KindProductRemoveFailed, domain.ErrNotInCart)
		return
	}
	next := slices.Delete(slices.Clone(s.items), idx, idx+1)
	err := s.commitLocked(next)
	s.mu.Unlock()
	if err != nil {
		s.fail(ctx, op, KindProductRemoveFailed, err)
		return
	}
	op.log.Info().Int("items", len(next)).Msg("producto eliminado")
}

// UpdateProductAmount fija la cantidad de un producto ya presente en el carrito.
// Rechaza cantidades <= 0 sin consultar la red y cantidades mayores al stock disponible.
// Si el producto no está en el carrito no hace nada.
func (s *Store) UpdateProductAmount(ctx context.Context, in UpdateProductAmount) {
	ctx, op := s.begin(ctx, "UpdateProductAmount", in.ProductID)
	defer op.end()
	op.log = logger.Child(op.log.With().Int("amount", in.Amount))
	op.span.SetAttributes(attribute.Int("cart.amount", in.Amount))

	if in.Amount <= 0 {
		s.fail(ctx, op, KindInvalidAmount, fmt.Errorf("%w: amount %d", domain.ErrInvalidInput, in.Amount))
		return
	}

	stock, err := s.stock.Get(ctx, in.ProductID)
	if err != nil {
		s.fail(ctx, op, KindAmountUpdateFailed, fmt.Errorf("consultar stock: %w", err))
		return
	}
	if stock == nil {
		s.fail(ctx, op, KindAmountUpdateFailed, fmt.Errorf("stock: %w", domain.ErrNotFound))
		return
	}
	if in.Amount > stock.Amount {
		s.fail(ctx, op, KindOutOfStock,
			fmt.Errorf("%w: pedido %d, disponible %d", domain.ErrInsufficientStock, in.Amount, stock.Amount))
		return
	}

	s.mu.Lock()
	idx := indexOf(s.items, in.ProductID)
	if idx < 0 {
		s.mu.Unlock()
		op.log.Debug().Msg("producto fuera del carrito; sin cambios")
		return
	}
	next := slices.Clone(s.items)
	next[idx].Amount = in.Amount
	err = s.commitLocked(next)
	s.mu.Unlock()
	if err != nil {
		s.fail(ctx, op, KindAmountUpdateFailed, err)
		return
	}
	op.log.Info().Msg("cantidad actualizada")
}

// commitLocked persiste next y, solo si la escritura tuvo éxito, lo publica en memoria.
// Requiere s.mu tomado. Set corre bajo el lock de escritura: con los drivers redis y
// postgres los lectores (Cart, Summary, AmountByProduct) esperan hasta que termine la
// escritura o venza su timeout (5s). Las consultas al catálogo y al stock van fuera del lock.
func (s *Store) commitLocked(next []entity.CartItem) error {
	raw, err := EncodeSnapshot(next)
	if err != nil {
		return err
	}
	if err := s.storage.Set(s.key, raw); err != nil {
		return fmt.Errorf("persistir carrito: %w", err)
	}
	s.items = next
	return nil
}

func indexOf(items []entity.CartItem, productID int) int {
	return slices.IndexFunc(items, func(it entity.CartItem) bool { return it.ID == productID })
}

// operation agrupa log y span de una llamada pública.
type operation struct {
	log  *logger.Logger
	span trace.Span
}

func (o operation) end() { o.span.End() }

func (s *Store) begin(ctx context.Context, name string, productID int) (context.Context, operation) {
	opID := uuid.NewString()
	ctx, span := s.tracer.Start(ctx, "cart."+name, trace.WithAttributes(
		attribute.Int("product.id", productID),
		attribute.String("cart.op_id", opID),
	))
	log := logger.Child(s.log.With().
		Str("op", name).
		Str("op_id", opID).
		Int("product_id", productID))
	return ctx, operation{log: log, span: span}
}

func (s *Store) fail(ctx context.Context, op operation, kind Kind, err error) {
	lvl := op.log.Warn()
	if errors.Is(err, domain.ErrInsufficientStock) || errors.Is(err, domain.ErrInvalidInput) {
		lvl = op.log.Info()
	}
	lvl.Err(err).Str("kind", kind.String()).Msg("operación del carrito rechazada")
	op.span.RecordError(err)
	op.span.SetStatus(codes.Error, kind.String())
	s.notifier.Error(ctx, kind.Message())
}
