// Comando cart: opera el carrito de RocketShoes contra la API del catálogo.
//
//	cart list                     muestra el carrito con subtotales y total
//	cart products                 lista el catálogo con la cantidad en el carrito
//	cart add <id>                 agrega el producto (o suma una unidad)
//	cart remove <id>              quita el producto
//	cart update <id> <cantidad>   fija la cantidad
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/catalogapi"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/kvstore"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/notify"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/tracing"
	"github.com/jhoicas/rocketshoes-cart/pkg/config"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
	"github.com/jhoicas/rocketshoes-cart/pkg/money"
)

const usage = `uso:
  cart list
  cart products
  cart add <id>
  cart remove <id>
  cart update <id> <cantidad>
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "cargar configuración:", err)
		return 1
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	shutdownTracing, err := tracing.Init(cfg.Trace.Enabled, stderr)
	if err != nil {
		log.Error().Err(err).Msg("inicializar trazas")
		return 1
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := kvstore.Open(ctx, cfg, nil, log)
	if err != nil {
		log.Error().Err(err).Msg("abrir storage del carrito")
		return 1
	}
	defer closeKV()

	client := catalogapi.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout())
	return execute(ctx, args, cliDeps{
		catalog: client,
		stock:   client,
		storage: kv,
		key:     cfg.Storage.Key,
		log:     log,
	}, stdout, stderr)
}

type cliDeps struct {
	catalog repository.ProductRepository
	stock   repository.StockRepository
	storage repository.KeyValueStore
	key     string
	log     *logger.Logger
}

// execute corre un comando. Devuelve 1 si el carrito emitió algún mensaje de error.
func execute(ctx context.Context, args []string, deps cliDeps, stdout, stderr io.Writer) int {
	store := cart.NewStore(cart.Deps{
		Products: deps.catalog,
		Stock:    deps.stock,
		Storage:  deps.storage,
		Notifier: notify.New(deps.log),
		Logger:   deps.log,
		Key:      deps.key,
	})
	ctx, toasts := notify.WithToasts(ctx)

	switch cmd, rest := args[0], args[1:]; cmd {
	case "list":
		if len(rest) != 0 {
			return badUsage(stderr)
		}
	case "products":
		if len(rest) != 0 {
			return badUsage(stderr)
		}
		return printProducts(ctx, stdout, stderr, deps.catalog, store.AmountByProduct())
	case "add", "remove":
		if len(rest) != 1 {
			return badUsage(stderr)
		}
		id, ok := parsePositive(rest[0])
		if !ok {
			return badUsage(stderr)
		}
		if cmd == "add" {
			store.AddProduct(ctx, id)
		} else {
			store.RemoveProduct(ctx, id)
		}
	case "update":
		if len(rest) != 2 {
			return badUsage(stderr)
		}
		id, ok := parsePositive(rest[0])
		amount, err := strconv.Atoi(rest[1])
		if !ok || err != nil {
			return badUsage(stderr)
		}
		store.UpdateProductAmount(ctx, cart.UpdateProductAmount{ProductID: id, Amount: amount})
	default:
		return badUsage(stderr)
	}

	printCart(stdout, store.Summary())
	msgs := toasts.Messages()
	for _, m := range msgs {
		fmt.Fprintln(stderr, m)
	}
	if len(msgs) > 0 {
		return 1
	}
	return 0
}

func badUsage(stderr io.Writer) int {
	fmt.Fprint(stderr, usage)
	return 2
}

func parsePositive(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil && n > 0
}

func printCart(w io.Writer, sum cart.Summary) {
	if len(sum.Items) == 0 {
		fmt.Fprintln(w, "Carrito vacío")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCTO\tPRECIO\tCANT.\tSUBTOTAL")
	for _, l := range sum.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			l.Item.ID, l.Item.Title, money.Format(l.Item.Price), l.Item.Amount, money.Format(l.Subtotal))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Total: %s (%d unidades)\n", money.Format(sum.Total), sum.Units)
}

func printProducts(ctx context.Context, w, stderr io.Writer, catalog repository.ProductRepository, inCart map[int]int) int {
	list, err := catalog.List(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "listar productos:", err)
		return 1
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCTO\tPRECIO\tEN CARRITO")
	for _, p := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", p.ID, p.Title, money.Format(p.Price), inCart[p.ID])
	}
	_ = tw.Flush()
	return 0
}
