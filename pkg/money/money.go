// Package money formatea importes para mostrarlos al usuario.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Los precios del catálogo están en reales; los textos de la tienda en español latinoamericano.
var (
	printer = message.NewPrinter(language.LatinAmericanSpanish)
	unit    = currency.BRL
)

// Format importe con el código ISO de la moneda, ej. "BRL 179.90".
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprint(currency.ISO(unit.Amount(f)))
}
