// Package numeric centraliza el parseo defensivo de montos y cantidades que
// llegan como texto desde el cliente. Nunca propaga NaN ni valores inválidos:
// cada helper devuelve (valor, ok) y los llamadores colapsan al default seguro.
package numeric

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parsea un monto decimal aceptando "." o "," como separador.
// Devuelve ok=false si el texto no es un número finito.
func ParseDecimal(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// MoneyOrZero parsea un precio: inválido o negativo colapsa a 0.
// Sin tope superior.
func MoneyOrZero(raw string) decimal.Decimal {
	d, ok := ParseDecimal(raw)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// IntOr parsea un entero; si el texto no es numérico devuelve def.
// Acepta también decimales enteros ("3.0" -> 3) como hacen los inputs numéricos.
func IntOr(raw string, def int) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if d, ok := ParseDecimal(s); ok && d.IsInteger() {
		return int(d.IntPart())
	}
	return def
}

// Clamp limita n al rango [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
