package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rocketshoes-cart/pkg/money"
)

func TestFormat(t *testing.T) {
	out := money.Format(decimal.RequireFromString("179.9"))
	assert.Contains(t, out, "BRL")
	assert.Contains(t, out, "179")
}
