package ionomy

import (
	"github.com/lukehollenback/ionomy/constants"
	"github.com/lukehollenback/ionomy/exchange"
	"github.com/shopspring/decimal"
)

func requireString(field string, value string) error {
	if value == "" {
		return exchange.Required(field)
	}

	return nil
}

//
// requireAmount validates that the provided amount (or price) is present and positive, and renders
// it with the fixed number of decimal places the exchange expects. Amounts too small to survive
// that rounding count as missing.
//
func requireAmount(field string, value decimal.Decimal) (string, error) {
	if value.Round(constants.AmountPlaces).IsZero() {
		return "", exchange.Required(field)
	}

	if value.LessThan(constants.Zero()) {
		return "", &exchange.ArgumentError{Field: field, Reason: "must be positive"}
	}

	return value.StringFixed(constants.AmountPlaces), nil
}

func requireOrderBookSide(field string, value string) error {
	switch value {
	case OrderBookAsk, OrderBookBid, OrderBookBoth:
		return nil
	case "":
		return exchange.Required(field)
	}

	return &exchange.ArgumentError{
		Field:  field,
		Reason: "must be one of " + OrderBookAsk + ", " + OrderBookBid + " or " + OrderBookBoth,
	}
}
