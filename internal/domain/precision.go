package domain

import "github.com/shopspring/decimal"

// Precision holds the venue's rounding rules for one symbol.
type Precision struct {
	PricePrecision int32
	QtyPrecision   int32
}

// DefaultPrecision is used for symbols missing from the reference table.
// Unknown symbols are not an error: the futures universe changes faster
// than this table does.
var DefaultPrecision = Precision{PricePrecision: 2, QtyPrecision: 2}

// symbolPrecisions is static reference data for the most-traded symbols.
// Consumed read-only when formatting order parameters.
var symbolPrecisions = map[string]Precision{
	"BTCUSDT":   {PricePrecision: 1, QtyPrecision: 3},
	"ETHUSDT":   {PricePrecision: 2, QtyPrecision: 3},
	"BNBUSDT":   {PricePrecision: 2, QtyPrecision: 2},
	"XRPUSDT":   {PricePrecision: 4, QtyPrecision: 1},
	"ADAUSDT":   {PricePrecision: 4, QtyPrecision: 0},
	"SOLUSDT":   {PricePrecision: 3, QtyPrecision: 0},
	"DOGEUSDT":  {PricePrecision: 5, QtyPrecision: 0},
	"DOTUSDT":   {PricePrecision: 3, QtyPrecision: 1},
	"MATICUSDT": {PricePrecision: 4, QtyPrecision: 0},
	"LTCUSDT":   {PricePrecision: 2, QtyPrecision: 3},
	"AVAXUSDT":  {PricePrecision: 3, QtyPrecision: 0},
	"LINKUSDT":  {PricePrecision: 3, QtyPrecision: 2},
	"ATOMUSDT":  {PricePrecision: 3, QtyPrecision: 2},
	"UNIUSDT":   {PricePrecision: 3, QtyPrecision: 0},
	"APTUSDT":   {PricePrecision: 3, QtyPrecision: 1},
	"ARBUSDT":   {PricePrecision: 4, QtyPrecision: 1},
	"OPUSDT":    {PricePrecision: 4, QtyPrecision: 1},
	"SUIUSDT":   {PricePrecision: 4, QtyPrecision: 1},
}

// PrecisionFor returns the rounding rules for a symbol, falling back to
// DefaultPrecision.
func PrecisionFor(symbol string) Precision {
	if p, ok := symbolPrecisions[symbol]; ok {
		return p
	}
	return DefaultPrecision
}

// RoundTo rounds x half-up to the given number of decimal places.
// decimal avoids the float64 representation traps of math.Round scaling.
func RoundTo(x float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(x).Round(places).Float64()
	return f
}

// RoundPrice rounds a price to the symbol's price precision.
func RoundPrice(symbol string, price float64) float64 {
	return RoundTo(price, PrecisionFor(symbol).PricePrecision)
}

// RoundQty rounds a quantity to the symbol's quantity precision.
func RoundQty(symbol string, qty float64) float64 {
	return RoundTo(qty, PrecisionFor(symbol).QtyPrecision)
}
