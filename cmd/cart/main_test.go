package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/seed"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/storage"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

const testCatalog = `{
  "products": [
    {"id": 1, "title": "Zapatillas de Caminata Livianas", "price": 179.9, "image": "1.jpg"},
    {"id": 2, "title": "Zapatillas VR de Caminata", "price": 139.9, "image": "2.jpg"}
  ],
  "stock": [{"id": 1, "amount": 3}, {"id": 2, "amount": 1}]
}`

func newDeps(t *testing.T) cliDeps {
	t.Helper()
	c, err := seed.Load(strings.NewReader(testCatalog))
	require.NoError(t, err)
	return cliDeps{catalog: c, stock: c, storage: storage.NewMemoryStore(), log: logger.Nop()}
}

func runCmd(t *testing.T, deps cliDeps, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := execute(context.Background(), args, deps, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExecute_AddPersisteEntreEjecuciones(t *testing.T) {
	deps := newDeps(t)

	code, out, _ := runCmd(t, deps, "add", "1")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Zapatillas de Caminata Livianas")

	// Otra ejecución sobre el mismo storage ve el carrito guardado.
	code, out, _ = runCmd(t, deps, "add", "1")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "(2 unidades)")
}

func TestExecute_FueraDeStock(t *testing.T) {
	deps := newDeps(t)
	runCmd(t, deps, "add", "2")

	code, _, errOut := runCmd(t, deps, "update", "2", "5")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Cantidad solicitada fuera de stock")
}

func TestExecute_Remove(t *testing.T) {
	deps := newDeps(t)
	runCmd(t, deps, "add", "1")

	code, out, _ := runCmd(t, deps, "remove", "1")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Carrito vacío")

	code, _, errOut := runCmd(t, deps, "remove", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error al eliminar el producto")
}

func TestExecute_Products(t *testing.T) {
	deps := newDeps(t)
	runCmd(t, deps, "add", "2")

	code, out, _ := runCmd(t, deps, "products")
	assert.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[2]), "1"), "producto 2 tiene 1 en el carrito")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[1]), "0"))
}

func TestExecute_UsoInvalido(t *testing.T) {
	deps := newDeps(t)
	for _, args := range [][]string{{"add"}, {"add", "x"}, {"update", "1"}, {"foo"}, {"list", "extra"}} {
		code, _, errOut := runCmd(t, deps, args...)
		assert.Equal(t, 2, code, args)
		assert.Contains(t, errOut, "uso:")
	}
}
